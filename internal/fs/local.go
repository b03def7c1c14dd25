// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"

	"github.com/rwx-research/xray-import/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// MkdirAll creates a directory along with any necessary parents
func (l Local) MkdirAll(path string, perm os.FileMode) error {
	return errors.WithStack(os.MkdirAll(path, perm))
}

// Open opens a file for reading
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// ReadDir lists the entries of a directory, sorted by filename
func (l Local) ReadDir(name string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(name)
	return entries, errors.WithStack(err)
}

// ReadFile reads the whole file
func (l Local) ReadFile(name string) ([]byte, error) {
	content, err := os.ReadFile(name)
	return content, errors.WithStack(err)
}

// Stat returns file information, following symlinks
func (l Local) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	return info, errors.WithStack(err)
}

// WriteFile writes data to the named file, creating it if necessary
func (l Local) WriteFile(name string, data []byte, perm os.FileMode) error {
	return errors.WithStack(os.WriteFile(name, data, perm))
}
