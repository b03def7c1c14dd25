// Package reporting turns the outcome of an import into build metadata: a dotenv file for downstream build steps and
// human-readable summaries.
package reporting

import (
	"strings"

	"github.com/rwx-research/xray-import/internal/backend"
)

// Names of the exported build variables.
const (
	VariableIsRequestSuccessful = "XRAY_IS_REQUEST_SUCCESSFUL"
	VariableTestExecs           = "XRAY_TEST_EXECS"
	VariableRawResponse         = "XRAY_RAW_RESPONSE"
)

// Metadata is the outcome of an import run.
type Metadata struct {
	Successful bool
	Failure    string
	TestExecs  []string
	Uploads    []backend.UploadResult
}

// NewMetadata derives the metadata from the upload results of a run and the error it ended with, if any.
func NewMetadata(results []backend.UploadResult, runErr error, extractor backend.KeyExtractor) Metadata {
	metadata := Metadata{
		Successful: runErr == nil,
		TestExecs:  make([]string, 0, len(results)),
		Uploads:    results,
	}

	if runErr != nil {
		metadata.Failure = runErr.Error()
	}

	seen := make(map[string]struct{}, len(results))
	for _, result := range results {
		if !result.Successful() {
			metadata.Successful = false
		}

		key, ok := extractor.ExtractKey(result.Message)
		if !ok {
			continue
		}

		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			metadata.TestExecs = append(metadata.TestExecs, key)
		}
	}

	return metadata
}

// Variables returns the build variables for the metadata.
func (m Metadata) Variables() map[string]string {
	responses := make([]string, len(m.Uploads))
	for i, upload := range m.Uploads {
		responses[i] = strings.TrimSpace(upload.Message)
	}

	successful := "false"
	if m.Successful {
		successful = "true"
	}

	return map[string]string{
		VariableIsRequestSuccessful: successful,
		VariableTestExecs:           strings.Join(m.TestExecs, ","),
		VariableRawResponse:         strings.Join(responses, ";"),
	}
}
