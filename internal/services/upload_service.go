package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/medxhealth/medx/internal/storage"
	"github.com/medxhealth/medx/internal/utils"
)

const maxResumeSize = 5 << 20

var resumeContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type UploadService interface {
	SaveResume(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (storedPath string, err error)
}

type uploadService struct {
	uploader storage.Uploader
}

func NewUploadService(uploader storage.Uploader) UploadService {
	return &uploadService{uploader: uploader}
}

func (s *uploadService) SaveResume(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (string, error) {
	const op = "UploadService.SaveResume"

	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}
	if _, ok := resumeContentTypes[contentType]; !ok {
		return "", utils.E(utils.CodeInvalidArgument, op, "invalid file type, only PDF and DOC files allowed", nil)
	}
	if size <= 0 || size > maxResumeSize {
		return "", utils.E(utils.CodeInvalidArgument, op, "file too large, max 5MB", nil)
	}

	objectName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeFilenameChars.ReplaceAllString(fileName, "_"))

	stored, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to store file", err)
	}
	return stored, nil
}
