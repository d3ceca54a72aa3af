package file

import (
	"github.com/Cyclone1070/offcode/internal/tool"
)

// -- Read File --

type ReadFileRequest struct {
	FilePath string `mapstructure:"file_path"`
}

func (r *ReadFileRequest) Validate() error {
	if r.FilePath == "" {
		return tool.MissingArgument("file_path")
	}
	return nil
}

// -- Write File / Append File --

type WriteFileRequest struct {
	FilePath string  `mapstructure:"file_path"`
	Content  *string `mapstructure:"content"`
}

func (r *WriteFileRequest) Validate() error {
	if r.FilePath == "" {
		return tool.MissingArgument("file_path")
	}
	if r.Content == nil {
		return tool.MissingArgument("content")
	}
	return nil
}
