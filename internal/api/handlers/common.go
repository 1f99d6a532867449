package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/services"
	"github.com/medxhealth/medx/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// currentActor rebuilds the service-layer identity from the context keys set
// by the auth middleware.
func currentActor(c *gin.Context) (services.Actor, bool) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
		return services.Actor{}, false
	}

	actor := services.Actor{
		UserID: userID,
		Role:   models.UserRole(c.GetString("role")),
	}
	if hex := c.GetString("hospital_id"); hex != "" {
		if hid, err := primitive.ObjectIDFromHex(hex); err == nil {
			actor.HospitalID = hid
		}
	}
	return actor, true
}
