package storage

import (
	"context"
	"io"
)

// Uploader persists a resume file and returns the path clients use to
// reference it (a local /uploads/ path or an object-store URL).
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}
