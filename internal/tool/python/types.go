package python

import "github.com/Cyclone1070/offcode/internal/tool"

// ExecutePythonRequest is the argument set of execute_python. Exactly one of
// Code and FilePath must be given.
type ExecutePythonRequest struct {
	Code     *string  `mapstructure:"code"`
	FilePath *string  `mapstructure:"file_path"`
	Timeout  *float64 `mapstructure:"timeout"`
}

func (r *ExecutePythonRequest) Validate() error {
	switch {
	case r.Code == nil && r.FilePath == nil:
		return &tool.ArgumentError{Name: "code", Reason: "one of code or file_path is required"}
	case r.Code != nil && r.FilePath != nil:
		return &tool.ArgumentError{Name: "code", Reason: "code and file_path are mutually exclusive"}
	case r.FilePath != nil && *r.FilePath == "":
		return tool.MissingArgument("file_path")
	}
	return nil
}
