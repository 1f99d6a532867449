package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/services"
	"github.com/medxhealth/medx/internal/utils"
)

type UploadHandler struct {
	svc services.UploadService
}

func NewUploadHandler(svc services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload accepts a candidate resume ahead of an application submission and
// returns the stored path the applicant echoes back as resume_path.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.Upload", "missing multipart field 'file'", err))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "UploadHandler.Upload", "failed to open upload", err))
		return
	}
	defer file.Close()

	stored, err := h.svc.SaveResume(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), fh.Size, file)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": stored})
}
