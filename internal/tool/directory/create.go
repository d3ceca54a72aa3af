package directory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// CreateDirectoryTool creates directories, including missing parents.
type CreateDirectoryTool struct {
	fs           fileSystem
	pathResolver pathResolver
}

// NewCreateDirectoryTool creates a new CreateDirectoryTool with injected dependencies.
func NewCreateDirectoryTool(fs fileSystem, pathResolver pathResolver) *CreateDirectoryTool {
	if fs == nil || pathResolver == nil {
		panic("fs and pathResolver are required")
	}
	return &CreateDirectoryTool{fs: fs, pathResolver: pathResolver}
}

func (t *CreateDirectoryTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "create_directory",
		Description: "Create a directory (and any missing parents) inside the sandbox.",
		Params: []tool.Param{
			{Name: "dir_path", Required: true, Description: "directory relative to the sandbox root"},
		},
	}
}

// Run creates the directory. An existing directory is a success, so
// repeated calls are idempotent.
func (t *CreateDirectoryTool) Run(ctx context.Context, req *CreateDirectoryRequest) (tool.Result, error) {
	abs, err := t.pathResolver.Resolve(req.DirPath)
	if err != nil {
		return tool.Result{}, err
	}
	rel := t.pathResolver.Rel(abs)

	info, err := t.fs.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return tool.Succeed(fmt.Sprintf("Directory %s already exists", rel)), nil
	case err == nil:
		return tool.Result{}, &NotADirectoryError{Path: rel}
	case !errors.Is(err, fs.ErrNotExist):
		return tool.Result{}, err
	}

	if err := t.fs.EnsureDirs(abs); err != nil {
		return tool.Result{}, err
	}
	res := tool.Succeed(fmt.Sprintf("Created directory %s", rel))
	res.Path = rel
	return res, nil
}
