package services

import (
	"context"
	"errors"
	"strings"

	"github.com/medxhealth/medx/internal/models"
	mongorepo "github.com/medxhealth/medx/internal/repositories/mongo"
	"github.com/medxhealth/medx/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmitApplicationInput struct {
	JobID         string `json:"job_id"`
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ResumePath    string `json:"resume_path"`
	CoverLetter   string `json:"cover_letter"`
}

type ApplicationListItem struct {
	models.Application
	JobTitle string `json:"job_title,omitempty"`
}

type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error)
	List(ctx context.Context, actor Actor, jobID string) ([]ApplicationListItem, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, status models.ApplicationStatus) (*models.Application, error)
}

type applicationService struct {
	applications mongorepo.ApplicationRepository
	jobs         mongorepo.JobRepository
}

func NewApplicationService(applications mongorepo.ApplicationRepository, jobs mongorepo.JobRepository) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs}
}

func (s *applicationService) Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if err := validateSubmit(&in); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	jobID, err := primitive.ObjectIDFromHex(in.JobID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "job not found or inactive", nil)
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found or inactive", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to verify job", err)
	}
	if !job.IsActive {
		return nil, utils.E(utils.CodeNotFound, op, "job not found or inactive", nil)
	}

	app := &models.Application{
		JobID:         jobID,
		ApplicantName: in.ApplicantName,
		Email:         in.Email,
		Phone:         in.Phone,
		ResumePath:    in.ResumePath,
		CoverLetter:   in.CoverLetter,
		Status:        models.StatusApplied,
	}
	if err := s.applications.Insert(ctx, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, actor Actor, jobID string) ([]ApplicationListItem, error) {
	const op = "ApplicationService.List"

	var filter []primitive.ObjectID // nil means all

	if !actor.IsAdmin() {
		ids, err := s.jobs.IDsByHospital(ctx, actor.HospitalID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to collect hospital jobs", err)
		}
		filter = ids
	}

	if jobID != "" {
		oid, err := primitive.ObjectIDFromHex(jobID)
		if err != nil {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", nil)
		}
		if !actor.IsAdmin() {
			job, err := s.jobs.FindByID(ctx, oid)
			if err != nil || !actor.OwnsHospital(job.HospitalID) {
				return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
			}
		}
		filter = []primitive.ObjectID{oid}
	}

	apps, err := s.applications.List(ctx, filter)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}

	// join job titles, one lookup per distinct job
	titles := map[primitive.ObjectID]string{}
	items := make([]ApplicationListItem, 0, len(apps))
	for _, a := range apps {
		title, ok := titles[a.JobID]
		if !ok {
			if job, err := s.jobs.FindByID(ctx, a.JobID); err == nil {
				title = job.Title
			}
			titles[a.JobID] = title
		}
		items = append(items, ApplicationListItem{Application: a, JobTitle: title})
	}
	return items, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, actor Actor, id string, status models.ApplicationStatus) (*models.Application, error) {
	const op = "ApplicationService.UpdateStatus"

	if !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status must be applied, shortlisted, rejected or hired", nil)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "application not found", nil)
	}

	app, err := s.applications.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	if !actor.IsAdmin() {
		job, err := s.jobs.FindByID(ctx, app.JobID)
		if err != nil || !actor.OwnsHospital(job.HospitalID) {
			return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
		}
	}

	if err := s.applications.SetStatus(ctx, oid, status); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update status", err)
	}

	app.Status = status
	return app, nil
}

func validateSubmit(in *SubmitApplicationInput) error {
	in.ApplicantName = strings.TrimSpace(in.ApplicantName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ResumePath = strings.TrimSpace(in.ResumePath)

	switch {
	case in.JobID == "":
		return errors.New("job id is required")
	case len(in.ApplicantName) < 2:
		return errors.New("applicant name must be at least 2 characters")
	case !utils.ValidEmail(in.Email):
		return errors.New("invalid email address")
	case len(in.Phone) < 10:
		return errors.New("phone must be at least 10 characters")
	case in.ResumePath == "":
		return errors.New("resume path is required")
	}
	return nil
}
