package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/services"
)

type HospitalHandler struct {
	svc services.HospitalService
}

func NewHospitalHandler(svc services.HospitalService) *HospitalHandler {
	return &HospitalHandler{svc: svc}
}

func (h *HospitalHandler) List(c *gin.Context) {
	hospitals, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospitals": hospitals})
}

func (h *HospitalHandler) Get(c *gin.Context) {
	hospital, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospital": hospital})
}
