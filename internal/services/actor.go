package services

import (
	"github.com/medxhealth/medx/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the authenticated identity a handler passes down to services.
// HospitalID is zero for admin accounts.
type Actor struct {
	UserID     primitive.ObjectID
	Role       models.UserRole
	HospitalID primitive.ObjectID
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// OwnsHospital reports whether the actor belongs to the given hospital.
func (a Actor) OwnsHospital(hospitalID primitive.ObjectID) bool {
	return !a.HospitalID.IsZero() && a.HospitalID == hospitalID
}
