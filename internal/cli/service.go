// Package cli holds the main business logic in our CLI. This is mainly:
// 1. Turning an import configuration into the right sequence of uploads.
// 2. User-friendly logging
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/xray-import`.
package cli

import (
	"go.uber.org/zap"

	xrayimport "github.com/rwx-research/xray-import"
	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/fs"
	"github.com/rwx-research/xray-import/internal/templating"
)

// Service is the main CLI service.
type Service struct {
	Log          *zap.SugaredLogger
	FileSystem   fs.FileSystem
	Uploader     backend.Uploader
	Expander     templating.Expander
	KeyExtractor backend.KeyExtractor
}

func (s Service) logError(err error) error {
	s.Log.Errorf(err.Error())
	return err
}

// PrintVersion prints the CLI version
func (s Service) PrintVersion() {
	s.Log.Infoln(xrayimport.Version)
}

// PrintFormats lists every supported result format together with its capabilities.
func (s Service) PrintFormats() {
	for _, format := range catalog.Formats() {
		capabilities := "single file"
		if format.SupportsGlob() {
			capabilities = "glob, same execution"
		}

		suffix := format.Suffix()
		if suffix == "" {
			suffix = "-"
		}

		s.Log.Infof("%-20s %-22s %-26s %s", format.Key(), suffix, format.Label(), capabilities)
	}
}
