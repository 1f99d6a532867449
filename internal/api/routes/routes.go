package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/api/handlers"
	"github.com/medxhealth/medx/internal/api/middleware"
	"github.com/medxhealth/medx/internal/auth"
	"github.com/medxhealth/medx/internal/models"
)

type Deps struct {
	Tokens       *auth.TokenManager
	Auth         *handlers.AuthHandler
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	Hospitals    *handlers.HospitalHandler
	Upload       *handlers.UploadHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	authed := middleware.CookieAuth(d.Tokens)

	r.POST("/auth/register", d.Auth.Register)
	r.POST("/auth/login", d.Auth.Login)

	r.GET("/jobs", d.Jobs.List)
	r.GET("/jobs/:id", d.Jobs.Get)
	r.POST("/jobs", authed, middleware.RequireRole(models.RoleHospital), d.Jobs.Create)
	r.PUT("/jobs/:id", authed, d.Jobs.Update)
	r.DELETE("/jobs/:id", authed, d.Jobs.Delete)

	r.POST("/applications", d.Applications.Submit)
	r.GET("/applications", authed, d.Applications.List)
	r.PUT("/applications/:id", authed, d.Applications.UpdateStatus)

	r.GET("/hospitals", authed, middleware.RequireAdmin(), d.Hospitals.List)
	r.GET("/hospitals/:id", d.Hospitals.Get)

	r.POST("/upload", d.Upload.Upload)
}
