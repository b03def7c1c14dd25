package mocks

import (
	"os"

	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
)

// FileSystem is a mocked implementation of 'fs.FileSystem'.
type FileSystem struct {
	MockMkdirAll  func(path string, perm os.FileMode) error
	MockOpen      func(name string) (fs.File, error)
	MockReadDir   func(name string) ([]os.DirEntry, error)
	MockReadFile  func(name string) ([]byte, error)
	MockStat      func(name string) (os.FileInfo, error)
	MockWriteFile func(name string, data []byte, perm os.FileMode) error
}

// MkdirAll either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	if f.MockMkdirAll != nil {
		return f.MockMkdirAll(path, perm)
	}

	return errors.NewInternalError("MockMkdirAll was not configured")
}

func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.NewInternalError("MockOpen was not configured")
}

func (f *FileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	if f.MockReadDir != nil {
		return f.MockReadDir(name)
	}

	return nil, errors.NewInternalError("MockReadDir was not configured")
}

func (f *FileSystem) ReadFile(name string) ([]byte, error) {
	if f.MockReadFile != nil {
		return f.MockReadFile(name)
	}

	return nil, errors.NewInternalError("MockReadFile was not configured")
}

func (f *FileSystem) Stat(name string) (os.FileInfo, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.NewInternalError("MockStat was not configured")
}

func (f *FileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if f.MockWriteFile != nil {
		return f.MockWriteFile(name, data, perm)
	}

	return errors.NewInternalError("MockWriteFile was not configured")
}
