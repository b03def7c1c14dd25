package mocks

import (
	"context"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/errors"
)

// UploadCall captures the arguments of a single call to `Uploader.Upload`.
type UploadCall struct {
	Format catalog.Format
	Data   map[catalog.DataParameter]backend.Payload
	Query  map[catalog.QueryParameter]string
}

// Uploader is a mocked implementation of 'backend.Uploader'. Every call is recorded.
type Uploader struct {
	MockUpload func(
		context.Context,
		catalog.Format,
		map[catalog.DataParameter]backend.Payload,
		map[catalog.QueryParameter]string,
	) (backend.UploadResult, error)

	Calls []UploadCall
}

// Upload either calls the configured mock of itself or returns an error if that doesn't exist.
func (u *Uploader) Upload(
	ctx context.Context,
	format catalog.Format,
	data map[catalog.DataParameter]backend.Payload,
	query map[catalog.QueryParameter]string,
) (backend.UploadResult, error) {
	u.Calls = append(u.Calls, UploadCall{Format: format, Data: data, Query: query})

	if u.MockUpload != nil {
		return u.MockUpload(ctx, format, data, query)
	}

	return backend.UploadResult{}, errors.NewInternalError("MockUpload was not configured")
}
