package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/config"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
	"github.com/rwx-research/xray-import/internal/templating"
)

const inlineInfoName = "info.json"

// Correlator uploads result files one after the other. When all files should end up in the same Test Execution, the
// key of the execution created by the first upload is passed along to every later upload.
type Correlator struct {
	Log          *zap.SugaredLogger
	FileSystem   fs.FileSystem
	Uploader     backend.Uploader
	Expander     templating.Expander
	KeyExtractor backend.KeyExtractor
	Workspace    string
}

// Run uploads `files` in order and returns one result per upload that reached Xray. It stops at the first error;
// uploads that already happened are not rolled back.
func (c Correlator) Run(
	ctx context.Context,
	format catalog.Format,
	imp config.Import,
	files []string,
) ([]backend.UploadResult, error) {
	if !format.SupportsGlob() && len(files) > 1 {
		return nil, errors.NewInternalError("format %q accepts a single result file, got %d", format, len(files))
	}

	merge := format.SupportsSameExecutionMerge() && imp.SameExecution()
	results := make([]backend.UploadResult, 0, len(files))

	var testExecKey string

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, errors.NewSystemError("import was interrupted: %s", err)
		}

		target, query := c.prepare(format, imp, merge, testExecKey)

		data, err := c.payloads(target, imp, file)
		if err != nil {
			return results, err
		}

		c.Log.Infof("Starting to import results from %s", filepath.Base(file))

		result, err := c.Uploader.Upload(ctx, target, data, query)
		result.File = file
		if result.StatusCode != 0 {
			c.Log.Infof("Response: (%d) %s", result.StatusCode, result.Message)
			results = append(results, result)
		}
		if err != nil {
			return results, err
		}

		c.Log.Infof("Successfully imported %s results from %s", target.Label(), filepath.Base(file))

		if merge && testExecKey == "" {
			key, ok := c.KeyExtractor.ExtractKey(result.Message)
			if !ok {
				return results, errors.NewCorrelationError("No Test Execution Key returned for %q", filepath.Base(file))
			}

			c.Log.Debugf("Importing remaining result files into %s", key)
			testExecKey = key
		}
	}

	return results, nil
}

// prepare expands the query parameters of the import. Once a Test Execution key is known and the import does not name
// one itself, the key is injected and multipart-only formats switch to their generic endpoint.
func (c Correlator) prepare(
	format catalog.Format,
	imp config.Import,
	merge bool,
	testExecKey string,
) (catalog.Format, map[catalog.QueryParameter]string) {
	query := make(map[catalog.QueryParameter]string)
	for _, qp := range catalog.QueryParameters() {
		if value, ok := imp.Field(qp.Key()); ok {
			query[qp] = strings.TrimSpace(c.Expander.Expand(value))
		}
	}

	undefined := templating.Unresolved(query[catalog.QueryParameterTestExecKey])
	if undefined {
		delete(query, catalog.QueryParameterTestExecKey)
	}

	if !merge || !undefined || testExecKey == "" {
		return format, query
	}

	query[catalog.QueryParameterTestExecKey] = testExecKey

	if generic, ok := format.GenericMultipartEquivalent(); ok {
		return generic, query
	}

	return format, query
}

func (c Correlator) payloads(
	target catalog.Format,
	imp config.Import,
	file string,
) (map[catalog.DataParameter]backend.Payload, error) {
	content, err := c.readFile(file)
	if err != nil {
		return nil, err
	}

	data := map[catalog.DataParameter]backend.Payload{
		catalog.DataParameterResults: {
			Name:      filepath.Base(file),
			MediaType: target.ResultsMediaType(),
			Content:   content,
		},
	}

	info := strings.TrimSpace(imp.Info())
	if info == "" || !target.IsMultipartOnly() {
		return data, nil
	}

	expanded := c.Expander.Expand(info)

	if !imp.InfoIsFilePath() {
		data[catalog.DataParameterInfo] = backend.Payload{
			Name:      inlineInfoName,
			MediaType: target.InfoMediaType(),
			Content:   []byte(expanded),
		}

		return data, nil
	}

	infoFile := resolvePath(c.Workspace, expanded)

	content, err = c.readFile(infoFile)
	if err != nil {
		return nil, err
	}

	data[catalog.DataParameterInfo] = backend.Payload{
		Name:      filepath.Base(infoFile),
		MediaType: target.InfoMediaType(),
		Content:   content,
	}

	return data, nil
}

func (c Correlator) readFile(path string) ([]byte, error) {
	info, err := c.FileSystem.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.NewSystemError("unable to access %q: %s", path, err)
	}

	if err != nil || info.IsDir() {
		return nil, errors.NewInputError("File path is a directory or the file doesn't exist: %s", path)
	}

	content, err := c.FileSystem.ReadFile(path)
	if err != nil {
		return nil, errors.NewSystemError("unable to read %q: %s", path, err)
	}

	return content, nil
}

// resolvePath anchors relative paths in the workspace. Absolute paths are kept.
func resolvePath(workspace, path string) string {
	path = filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
	if filepath.IsAbs(path) || workspace == "" {
		return path
	}

	return filepath.Join(workspace, path)
}
