package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobType string

const (
	JobFullTime JobType = "Full-time"
	JobPartTime JobType = "Part-time"
	JobContract JobType = "Contract"
)

func (t JobType) Valid() bool {
	return t == JobFullTime || t == JobPartTime || t == JobContract
}

type Job struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Type            JobType            `bson:"type" json:"type"`
	Location        string             `bson:"location" json:"location"`
	SalaryRange     string             `bson:"salary_range" json:"salary_range"`
	HospitalID      primitive.ObjectID `bson:"hospital_id" json:"hospital_id"`
	CreatedByUserID primitive.ObjectID `bson:"created_by_user_id" json:"created_by_user_id"`
	IsActive        bool               `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// JobUpdate carries a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Type        *JobType `json:"type,omitempty"`
	Location    *string  `json:"location,omitempty"`
	SalaryRange *string  `json:"salary_range,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
