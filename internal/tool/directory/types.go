package directory

import "github.com/Cyclone1070/offcode/internal/tool"

// -- List Directory --

type ListDirectoryRequest struct {
	DirPath string `mapstructure:"dir_path"`
	Pattern string `mapstructure:"pattern"`
}

func (r *ListDirectoryRequest) Validate() error {
	if r.DirPath == "" {
		r.DirPath = "."
	}
	return nil
}

// -- Create Directory --

type CreateDirectoryRequest struct {
	DirPath string `mapstructure:"dir_path"`
}

func (r *CreateDirectoryRequest) Validate() error {
	if r.DirPath == "" {
		return tool.MissingArgument("dir_path")
	}
	return nil
}
