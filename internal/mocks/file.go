package mocks

import (
	"os"
	"path/filepath"
	"strings"
)

// File is a mocked implementation of `fs.File`, based on a common `strings.Reader`
type File struct {
	*strings.Reader

	FileName string
	Closed   bool
}

// NewFile returns an open file holding `content`.
func NewFile(name, content string) *File {
	return &File{Reader: strings.NewReader(content), FileName: name}
}

// Close marks the file as closed.
func (f *File) Close() error {
	f.Closed = true
	return nil
}

func (f *File) Name() string {
	return f.FileName
}

// Stat describes the file as a regular file of the reader's size.
func (f *File) Stat() (os.FileInfo, error) {
	return FileInfo{FileName: filepath.Base(f.FileName), FileSize: f.Size(), FileMode: 0o644}, nil
}
