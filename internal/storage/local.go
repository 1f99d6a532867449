package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader writes files under a single directory and serves them back
// as /uploads/<name> paths. Object names must already be sanitized.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Upload(_ context.Context, objectName string, _ string, r io.Reader) (string, error) {
	dst := filepath.Join(u.dir, filepath.Base(objectName))

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return "/uploads/" + filepath.Base(objectName), nil
}
