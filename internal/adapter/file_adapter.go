// Package adapter contains the filesystem and logging adapters for jsonreader.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/jsonreader/internal/model"
)

// ErrReadFile wraps every failure to open or read a document.
var ErrReadFile = errors.New("read file")

// FileAdapter hides direct os access so the load workflow can be tested
// without touching the disk.
type FileAdapter interface {
	// ReadFile returns the whole content of the file at path as text.
	ReadFile(path m.Path) (string, error)
}

// LocalFileAdapter reads documents from the local filesystem.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile opens path, reads it in full and closes it before returning.
// Whatever was read before an error is returned alongside it.
func (a *LocalFileAdapter) ReadFile(path m.Path) (string, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return string(content), fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	return string(content), nil
}
