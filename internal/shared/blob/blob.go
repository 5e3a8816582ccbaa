package blob

import (
	"context"
	"io"
)

//go:generate mockgen -source=blob.go -destination=mock/blob_mock.go -package=mock

// Uploader stores a byte stream and returns a retrievable URL. The
// engine never inspects file contents; it only keeps the URL on the
// request row.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}
