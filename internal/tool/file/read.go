package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/tool/helper/content"
)

// ReadFileTool handles file reading operations.
type ReadFileTool struct {
	fileOps      fileReader
	pathResolver pathResolver
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, pathResolver pathResolver) *ReadFileTool {
	if fileOps == nil || pathResolver == nil {
		panic("fileOps and pathResolver are required")
	}
	return &ReadFileTool{fileOps: fileOps, pathResolver: pathResolver}
}

func (t *ReadFileTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "read_file",
		Description: "Read a text file inside the sandbox and return its content.",
		Params: []tool.Param{
			{Name: "file_path", Required: true, Description: "path relative to the sandbox root"},
		},
	}
}

// Run reads a whole text file from the sandbox. Binary files are rejected.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (tool.Result, error) {
	abs, err := t.pathResolver.Resolve(req.FilePath)
	if err != nil {
		return tool.Result{}, err
	}
	rel := t.pathResolver.Rel(abs)

	data, err := t.fileOps.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tool.Result{}, &NotFoundError{Path: req.FilePath}
		}
		return tool.Result{}, err
	}
	if content.LooksBinary(data) || !utf8.Valid(data) {
		return tool.Result{}, &BinaryFileError{Path: rel}
	}

	text := string(data)
	chars := utf8.RuneCountInString(text)
	return tool.Result{
		Success: true,
		Output:  tool.OutputContent,
		Message: fmt.Sprintf("Read %d characters from %s", chars, rel),
		Content: text,
		Chars:   chars,
		Lines:   content.CountLines(text),
		Path:    rel,
	}, nil
}
