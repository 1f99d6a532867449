package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/medxhealth/medx/internal/storage"
	"github.com/medxhealth/medx/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	uploader, err := storage.NewLocalUploader(dir)
	require.NoError(t, err)
	return NewUploadService(uploader), dir
}

func TestSaveResume(t *testing.T) {
	svc, dir := newUploadFixture(t)

	body := strings.NewReader("%PDF-1.4 fake resume")
	path, err := svc.SaveResume(context.Background(), "Jamie Park Resume.pdf", "application/pdf", 20, body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, "-Jamie_Park_Resume.pdf"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	b, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake resume", string(b))
}

func TestSaveResumeRejectsBadType(t *testing.T) {
	svc, _ := newUploadFixture(t)

	_, err := svc.SaveResume(context.Background(), "resume.exe", "application/octet-stream", 10, strings.NewReader("xx"))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSaveResumeRejectsOversize(t *testing.T) {
	svc, _ := newUploadFixture(t)

	_, err := svc.SaveResume(context.Background(), "resume.pdf", "application/pdf", 6<<20, strings.NewReader("xx"))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.SaveResume(context.Background(), "resume.pdf", "application/pdf", 0, strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
