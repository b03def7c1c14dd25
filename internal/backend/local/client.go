// Package local implements a dry-run backend. Instead of talking to Xray, it records every import request as a YAML
// file and answers with a response shaped like the one of the configured hosting type.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
)

// DefaultDir is where records are written to, relative to the workspace.
const DefaultDir = ".xray/dry-run"

const fallbackProjectKey = "DRYRUN"

// Record is a single recorded import request.
type Record struct {
	ID       string            `yaml:"id"`
	Sequence int               `yaml:"sequence"`
	Format   string            `yaml:"format"`
	Endpoint string            `yaml:"endpoint"`
	Query    map[string]string `yaml:"query,omitempty"`
	Payloads []RecordedPayload `yaml:"payloads"`
	Response string            `yaml:"response"`
}

// RecordedPayload describes an attached payload without its content.
type RecordedPayload struct {
	Parameter string `yaml:"parameter"`
	Name      string `yaml:"name"`
	MediaType string `yaml:"media-type"`
	Size      int    `yaml:"size"`
}

// Client is the dry-run uploader. It records every request as a YAML file instead of sending it and answers with a
// response shaped like the one of the configured hosting.
type Client struct {
	fs      fs.FileSystem
	dir     string
	hosting backend.Hosting
	newUUID func() (uuid.UUID, error)
	issued  *int
}

// NewClient returns a dry-run client writing its records into `dir`.
func NewClient(fileSystem fs.FileSystem, dir string, hosting backend.Hosting) (Client, error) {
	if err := fileSystem.MkdirAll(dir, 0o755); err != nil {
		return Client{}, errors.NewSystemError("unable to create %q: %s", dir, err)
	}

	return Client{fs: fileSystem, dir: dir, hosting: hosting, newUUID: uuid.NewRandom, issued: new(int)}, nil
}

// WithUUIDGenerator returns a copy of the client using a different record ID generator.
func (c Client) WithUUIDGenerator(newUUID func() (uuid.UUID, error)) Client {
	c.newUUID = newUUID
	return c
}

// Upload implements backend.Uploader.
func (c Client) Upload(
	_ context.Context,
	format catalog.Format,
	data map[catalog.DataParameter]backend.Payload,
	query map[catalog.QueryParameter]string,
) (backend.UploadResult, error) {
	id, err := c.newUUID()
	if err != nil {
		return backend.UploadResult{}, errors.NewInternalError("unable to generate record ID: %s", err)
	}

	*c.issued++
	sequence := *c.issued

	key := strings.TrimSpace(query[catalog.QueryParameterTestExecKey])
	if key == "" {
		key = fmt.Sprintf("%s-%d", projectKey(data, query), sequence)
	}

	response, err := c.response(sequence, key)
	if err != nil {
		return backend.UploadResult{}, err
	}

	record := Record{
		ID:       id.String(),
		Sequence: sequence,
		Format:   format.Key(),
		Endpoint: "/import/execution" + format.Suffix(),
		Query:    make(map[string]string),
		Payloads: make([]RecordedPayload, 0, len(data)),
		Response: response,
	}

	for _, qp := range catalog.QueryParameters() {
		if value := strings.TrimSpace(query[qp]); value != "" {
			record.Query[qp.Key()] = value
		}
	}

	for _, dp := range catalog.DataParameters() {
		if payload, ok := data[dp]; ok {
			record.Payloads = append(record.Payloads, RecordedPayload{
				Parameter: dp.Key(),
				Name:      payload.Name,
				MediaType: payload.MediaType,
				Size:      len(payload.Content),
			})
		}
	}

	encoded, err := yaml.Marshal(record)
	if err != nil {
		return backend.UploadResult{}, errors.NewInternalError("unable to encode dry-run record: %s", err)
	}

	path := filepath.Join(c.dir, fmt.Sprintf("%04d-%s.yaml", sequence, record.ID))
	if err := c.fs.WriteFile(path, encoded, 0o644); err != nil {
		return backend.UploadResult{}, errors.NewSystemError("unable to write to %q: %s", path, err)
	}

	return backend.UploadResult{StatusCode: 200, Message: response}, nil
}

func (c Client) response(sequence int, key string) (string, error) {
	issue := map[string]string{
		"id":   fmt.Sprintf("%d", 10000+sequence),
		"key":  key,
		"self": "dry-run",
	}

	var body any = issue
	if c.hosting != backend.HostingCloud {
		body = map[string]any{"testExecIssue": issue}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return "", errors.NewInternalError("unable to encode dry-run response: %s", err)
	}

	return string(encoded), nil
}

// projectKey reads the project from the query or, for multipart requests, from the Test Execution info.
func projectKey(data map[catalog.DataParameter]backend.Payload, query map[catalog.QueryParameter]string) string {
	if key := strings.TrimSpace(query[catalog.QueryParameterProjectKey]); key != "" {
		return key
	}

	if info, ok := data[catalog.DataParameterInfo]; ok {
		if key := gjson.GetBytes(info.Content, "fields.project.key"); key.Exists() && key.String() != "" {
			return key.String()
		}
	}

	return fallbackProjectKey
}
