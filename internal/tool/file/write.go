package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/tool/helper/content"
)

const filePerm os.FileMode = 0o644

// WriteFileTool creates or replaces files, or appends to them when built
// with NewAppendFileTool.
type WriteFileTool struct {
	fileOps      fileWriter
	pathResolver pathResolver
	maxFileSize  int64
	appendMode   bool
}

// NewWriteFileTool creates the write_file tool.
func NewWriteFileTool(fileOps fileWriter, pathResolver pathResolver, maxFileSize int64) *WriteFileTool {
	if fileOps == nil || pathResolver == nil {
		panic("fileOps and pathResolver are required")
	}
	return &WriteFileTool{fileOps: fileOps, pathResolver: pathResolver, maxFileSize: maxFileSize}
}

// NewAppendFileTool creates the append_file tool.
func NewAppendFileTool(fileOps fileWriter, pathResolver pathResolver, maxFileSize int64) *WriteFileTool {
	t := NewWriteFileTool(fileOps, pathResolver, maxFileSize)
	t.appendMode = true
	return t
}

func (t *WriteFileTool) Declaration() tool.Declaration {
	if t.appendMode {
		return tool.Declaration{
			Name:        "append_file",
			Description: "Append content to a file inside the sandbox, creating it if absent.",
			Params: []tool.Param{
				{Name: "file_path", Required: true, Description: "path relative to the sandbox root"},
				{Name: "content", Required: true, Description: "text to append; use ''' for multi-line content"},
			},
		}
	}
	return tool.Declaration{
		Name:        "write_file",
		Description: "Write the complete content of a file inside the sandbox, creating parent directories.",
		Params: []tool.Param{
			{Name: "file_path", Required: true, Description: "path relative to the sandbox root"},
			{Name: "content", Required: true, Description: "full file content; use ''' for multi-line content"},
		},
	}
}

// Run normalises escape sequences in the content, creates missing parent
// directories and writes (or appends) the result. BytesWritten counts the
// characters actually persisted.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *WriteFileTool) Run(ctx context.Context, req *WriteFileRequest) (tool.Result, error) {
	abs, err := t.pathResolver.Resolve(req.FilePath)
	if err != nil {
		return tool.Result{}, err
	}
	rel := t.pathResolver.Rel(abs)

	info, err := t.fileOps.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return tool.Result{}, &IsDirectoryError{Path: rel}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return tool.Result{}, err
	}

	text := content.NormalizeEscapes(*req.Content)
	data := []byte(text)
	if content.LooksBinary(data) {
		return tool.Result{}, &BinaryFileError{Path: rel}
	}
	if t.maxFileSize > 0 && int64(len(data)) > t.maxFileSize {
		return tool.Result{}, &TooLargeError{Path: rel, Size: len(data), Limit: t.maxFileSize}
	}

	parent := filepath.Dir(abs)
	if err := t.fileOps.EnsureDirs(parent); err != nil {
		return tool.Result{}, &EnsureDirsError{Path: t.pathResolver.Rel(parent), Cause: err}
	}

	verb := "Wrote"
	if t.appendMode {
		verb = "Appended"
		err = t.fileOps.AppendFile(abs, data, filePerm)
	} else {
		err = t.fileOps.WriteFileAtomic(abs, data, filePerm)
	}
	if err != nil {
		return tool.Result{}, &WriteError{Path: rel, Cause: err}
	}

	written := utf8.RuneCountInString(text)
	return tool.Result{
		Success:      true,
		Output:       tool.OutputMessage,
		Message:      fmt.Sprintf("%s %d characters to %s", verb, written, rel),
		BytesWritten: &written,
		Path:         rel,
	}, nil
}
