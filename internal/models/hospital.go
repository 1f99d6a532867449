package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Hospital struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Address         string             `bson:"address" json:"address"`
	Phone           string             `bson:"phone" json:"phone"`
	Website         string             `bson:"website,omitempty" json:"website,omitempty"`
	CreatedByUserID primitive.ObjectID `bson:"created_by_user_id" json:"created_by_user_id"`
	Verified        bool               `bson:"verified" json:"verified"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// HospitalSummary is the subset joined into public job listings.
type HospitalSummary struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address" json:"address"`
}
