package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/config"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/glob"
	"github.com/rwx-research/xray-import/internal/reporting"
)

// ImportResults migrates & validates an import, resolves its result files and uploads them. Build metadata is written
// for failed runs as well.
func (s Service) ImportResults(ctx context.Context, cfg ImportConfig) ([]backend.UploadResult, error) {
	if s.KeyExtractor == nil {
		s.KeyExtractor = backend.ExtractorFor(backend.HostingServer)
	}

	results, err := s.importResults(ctx, cfg)

	metadata := reporting.NewMetadata(results, err, s.KeyExtractor)
	if writeErr := s.writeMetadata(cfg, metadata); writeErr != nil {
		if err == nil {
			return results, s.logError(writeErr)
		}

		s.Log.Warnf("unable to write build metadata: %s", writeErr)
	}

	if err != nil {
		return results, err
	}

	var summary bytes.Buffer
	if err := reporting.WriteTextSummary(&summary, metadata); err == nil {
		s.Log.Debug(summary.String())
	}

	return results, nil
}

func (s Service) importResults(ctx context.Context, cfg ImportConfig) ([]backend.UploadResult, error) {
	imp := config.Migrate(cfg.Import)

	if err := config.Validate(imp); err != nil {
		return nil, s.logError(err)
	}

	format, _ := imp.ResolvedFormat()
	pattern := s.Expander.Expand(imp.ResultsPath())

	paths := []string{pattern}
	if imp.InfoIsFilePath() {
		paths = append(paths, s.Expander.Expand(strings.TrimSpace(imp.Info())))
	}
	if err := config.ValidatePaths(paths...); err != nil {
		return nil, s.logError(err)
	}

	if cfg.Name != "" {
		s.Log.Debugf("Running import %q against the %s endpoint", cfg.Name, format.Label())
	}

	files := []string{resolvePath(cfg.Workspace, pattern)}
	if format.SupportsGlob() {
		matches, err := glob.Resolver{FileSystem: s.FileSystem}.Resolve(cfg.Workspace, pattern)
		if err != nil {
			return nil, s.logError(err)
		}

		files = matches
	}

	if len(files) == 0 {
		err := errors.NewInputError("no result files matched %q", pattern)
		if cfg.FailOnNoResults {
			return nil, s.logError(err)
		}

		s.Log.Warn(err.Error())
		return []backend.UploadResult{}, nil
	}

	s.Log.Debugf("Resolved %d result file(s) from %q", len(files), pattern)

	correlator := Correlator{
		Log:          s.Log,
		FileSystem:   s.FileSystem,
		Uploader:     s.Uploader,
		Expander:     s.Expander,
		KeyExtractor: s.KeyExtractor,
		Workspace:    cfg.Workspace,
	}

	results, err := correlator.Run(ctx, format, imp, files)
	if err != nil {
		return results, s.logError(err)
	}

	return results, nil
}

func (s Service) writeMetadata(cfg ImportConfig, metadata reporting.Metadata) error {
	writers := []struct {
		path  string
		write func(io.Writer, reporting.Metadata) error
	}{
		{cfg.MetadataFile, reporting.WriteDotenv},
		{cfg.SummaryFile, reporting.WriteMarkdownSummary},
	}

	for _, writer := range writers {
		if writer.path == "" {
			continue
		}

		var buf bytes.Buffer
		if err := writer.write(&buf, metadata); err != nil {
			return errors.WithStack(err)
		}

		path := resolvePath(cfg.Workspace, writer.path)
		if err := s.FileSystem.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.NewSystemError("unable to create directory for %q: %s", path, err)
		}

		if err := s.FileSystem.WriteFile(path, buf.Bytes(), os.FileMode(0o644)); err != nil {
			return errors.NewSystemError("unable to write to %q: %s", path, err)
		}
	}

	return nil
}
