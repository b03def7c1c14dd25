package backend

import (
	"context"
	"strings"

	"github.com/rwx-research/xray-import/internal/catalog"
)

// Uploader is the interface of our API layer. Implementations send one import request to Xray.
type Uploader interface {
	Upload(
		ctx context.Context,
		format catalog.Format,
		data map[catalog.DataParameter]Payload,
		query map[catalog.QueryParameter]string,
	) (UploadResult, error)
}

// Hosting is the deployment type of an Xray instance.
type Hosting string

const (
	HostingServer Hosting = "server"
	HostingCloud  Hosting = "cloud"
)

// ParseHosting parses a hosting type. Data Center instances share the Server API.
func ParseHosting(value string) (Hosting, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "server", "dc", "datacenter", "data-center":
		return HostingServer, true
	case "cloud":
		return HostingCloud, true
	default:
		return "", false
	}
}

// Payload is a named binary payload attached to an import request.
type Payload struct {
	Name      string
	MediaType string
	Content   []byte
}

// UploadResult is the outcome of a single import request.
type UploadResult struct {
	StatusCode int
	Message    string
	File       string
}

// Successful reports whether Xray accepted the upload.
func (r UploadResult) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
