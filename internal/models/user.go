package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin    UserRole = "medxAdmin"
	RoleHospital UserRole = "hospital"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleHospital
}

// User is an account that can sign in. Hospital accounts are linked to the
// Hospital they created at registration; admin accounts have no hospital.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // unique, stored lowercase
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         UserRole           `bson:"role" json:"role"`
	HospitalID   primitive.ObjectID `bson:"hospital_id,omitempty" json:"hospital_id,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
