package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application is a candidate's submission against a job. Candidates are not
// accounts; contact details live on the application itself.
type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID         primitive.ObjectID `bson:"job_id" json:"job_id"`
	ApplicantName string             `bson:"applicant_name" json:"applicant_name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	ResumePath    string             `bson:"resume_path" json:"resume_path"`
	CoverLetter   string             `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	AppliedAt     time.Time          `bson:"applied_at" json:"applied_at"`
	Status        ApplicationStatus  `bson:"status" json:"status"`
}
