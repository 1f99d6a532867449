package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/services"
	"github.com/medxhealth/medx/internal/utils"
)

type AuthHandler struct {
	svc           services.AuthService
	cookieTTL     time.Duration
	secureCookies bool
}

func NewAuthHandler(svc services.AuthService, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieTTL: cookieTTL, secureCookies: secureCookies}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Register", "invalid request body", err))
		return
	}

	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(h.cookieTTL.Seconds()), "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User: LoginUser{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}
