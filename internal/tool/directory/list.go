package directory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/tool/service/git"
)

// ListDirectoryTool handles directory listing operations.
type ListDirectoryTool struct {
	fs           fileSystem
	pathResolver pathResolver
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
func NewListDirectoryTool(fs fileSystem, pathResolver pathResolver) *ListDirectoryTool {
	if fs == nil || pathResolver == nil {
		panic("fs and pathResolver are required")
	}
	return &ListDirectoryTool{fs: fs, pathResolver: pathResolver}
}

func (t *ListDirectoryTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "list_directory",
		Description: "List the entries of a directory inside the sandbox, sorted by name.",
		Params: []tool.Param{
			{Name: "dir_path", Required: false, Description: "directory relative to the sandbox root; defaults to the root"},
			{Name: "pattern", Required: false, Description: "gitignore-style glob, e.g. *.py; several may be comma separated"},
		},
	}
}

// Run lists the immediate children of a sandbox directory. Entries are
// sorted lexicographically and optionally filtered by pattern.
func (t *ListDirectoryTool) Run(ctx context.Context, req *ListDirectoryRequest) (tool.Result, error) {
	abs, err := t.pathResolver.Resolve(req.DirPath)
	if err != nil {
		return tool.Result{}, err
	}
	rel := t.pathResolver.Rel(abs)

	entries, err := t.fs.ListDir(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tool.Result{}, &NotFoundError{Path: req.DirPath}
		}
		var notDir interface{ InvalidArgument() bool }
		if errors.As(err, &notDir) {
			return tool.Result{}, &NotADirectoryError{Path: rel}
		}
		return tool.Result{}, err
	}

	matcher := git.NewPatternMatcher(req.Pattern)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if matcher.Match(e.Name(), e.IsDir()) {
			names = append(names, e.Name())
		}
	}

	return tool.Result{
		Success: true,
		Output:  tool.OutputEntries,
		Message: fmt.Sprintf("Found %d entries in %s", len(names), rel),
		Entries: names,
		Path:    rel,
	}, nil
}
