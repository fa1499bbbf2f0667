package tailer

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors produced when a path cannot be tailed. Read and stat
// failures that fit none of these wrap the underlying error unchanged.
var (
	ErrNotFound        = errors.New("file not found")
	ErrPermission      = errors.New("permission denied")
	ErrIsDirectory     = errors.New("path is a directory")
	ErrInvalidArgument = errors.New("invalid argument")
)

func classifyOpen(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("open %s: %w", path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("open %s: %w", path, ErrPermission)
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}
}
