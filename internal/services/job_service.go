package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/medxhealth/medx/internal/cache"
	"github.com/medxhealth/medx/internal/models"
	mongorepo "github.com/medxhealth/medx/internal/repositories/mongo"
	"github.com/medxhealth/medx/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	jobCacheTTL = 60 * time.Second
)

type CreateJobInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        models.JobType `json:"type"`
	Location    string         `json:"location"`
	SalaryRange string         `json:"salary_range"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type JobListItem struct {
	models.Job
	Hospital *models.HospitalSummary `json:"hospital,omitempty"`
}

type JobList struct {
	Jobs       []JobListItem `json:"jobs"`
	Pagination Pagination    `json:"pagination"`
}

type JobDetail struct {
	models.Job
	Hospital *models.Hospital `json:"hospital,omitempty"`
}

type JobService interface {
	List(ctx context.Context, page, limit int) (*JobList, error)
	Get(ctx context.Context, id string) (*JobDetail, error)
	Create(ctx context.Context, actor Actor, in CreateJobInput) (*models.Job, error)
	Update(ctx context.Context, actor Actor, id string, upd models.JobUpdate) (*models.Job, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type jobService struct {
	jobs      mongorepo.JobRepository
	hospitals mongorepo.HospitalRepository
	cache     cache.Cache // optional
}

func NewJobService(jobs mongorepo.JobRepository, hospitals mongorepo.HospitalRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, hospitals: hospitals, cache: c}
}

func (s *jobService) List(ctx context.Context, page, limit int) (*JobList, error) {
	const op = "JobService.List"

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	skip := int64(page-1) * int64(limit)
	jobs, err := s.jobs.FindActive(ctx, skip, int64(limit))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	total, err := s.jobs.CountActive(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count jobs", err)
	}

	// join hospital summaries, one lookup per distinct hospital
	summaries := map[primitive.ObjectID]*models.HospitalSummary{}
	items := make([]JobListItem, 0, len(jobs))
	for _, j := range jobs {
		sum, ok := summaries[j.HospitalID]
		if !ok {
			if h, err := s.hospitals.FindByID(ctx, j.HospitalID); err == nil {
				sum = &models.HospitalSummary{ID: h.ID, Name: h.Name, Address: h.Address}
			}
			summaries[j.HospitalID] = sum
		}
		items = append(items, JobListItem{Job: j, Hospital: sum})
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &JobList{
		Jobs: items,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*JobDetail, error) {
	const op = "JobService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "job not found", nil)
	}

	cacheKey := "job:" + id
	if s.cache != nil {
		var cached JobDetail
		if hit, _ := s.cache.GetJSON(ctx, cacheKey, &cached); hit {
			return &cached, nil
		}
	}

	job, err := s.jobs.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	detail := &JobDetail{Job: *job}
	if h, err := s.hospitals.FindByID(ctx, job.HospitalID); err == nil {
		detail.Hospital = h
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, detail, jobCacheTTL)
	}
	return detail, nil
}

func (s *jobService) Create(ctx context.Context, actor Actor, in CreateJobInput) (*models.Job, error) {
	const op = "JobService.Create"

	if err := validateCreateJob(&in); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}
	if actor.HospitalID.IsZero() {
		return nil, utils.E(utils.CodeForbidden, op, "account is not linked to a hospital", nil)
	}

	job := &models.Job{
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Location:        in.Location,
		SalaryRange:     in.SalaryRange,
		HospitalID:      actor.HospitalID,
		CreatedByUserID: actor.UserID,
		IsActive:        true,
	}
	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, actor Actor, id string, upd models.JobUpdate) (*models.Job, error) {
	const op = "JobService.Update"

	job, oid, err := s.loadOwned(ctx, op, actor, id)
	if err != nil {
		return nil, err
	}

	if err := validateJobUpdate(&upd); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	if err := s.jobs.Update(ctx, oid, upd); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "job:"+id)
	}

	applyJobUpdate(job, upd)
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "JobService.Delete"

	_, oid, err := s.loadOwned(ctx, op, actor, id)
	if err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "job:"+id)
	}
	return nil
}

// loadOwned fetches a job and enforces that the actor may mutate it.
func (s *jobService) loadOwned(ctx context.Context, op string, actor Actor, id string) (*models.Job, primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, primitive.NilObjectID, utils.E(utils.CodeNotFound, op, "job not found", nil)
	}

	job, err := s.jobs.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, primitive.NilObjectID, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, primitive.NilObjectID, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	if !actor.IsAdmin() && !actor.OwnsHospital(job.HospitalID) {
		return nil, primitive.NilObjectID, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return job, oid, nil
}

func validateCreateJob(in *CreateJobInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.SalaryRange = strings.TrimSpace(in.SalaryRange)

	switch {
	case len(in.Title) < 3:
		return errors.New("title must be at least 3 characters")
	case len(in.Description) < 10:
		return errors.New("description must be at least 10 characters")
	case !in.Type.Valid():
		return errors.New("type must be Full-time, Part-time or Contract")
	case len(in.Location) < 2:
		return errors.New("location must be at least 2 characters")
	case in.SalaryRange == "":
		return errors.New("salary range is required")
	}
	return nil
}

func validateJobUpdate(upd *models.JobUpdate) error {
	if upd.Title != nil {
		*upd.Title = strings.TrimSpace(*upd.Title)
		if len(*upd.Title) < 3 {
			return errors.New("title must be at least 3 characters")
		}
	}
	if upd.Description != nil {
		*upd.Description = strings.TrimSpace(*upd.Description)
		if len(*upd.Description) < 10 {
			return errors.New("description must be at least 10 characters")
		}
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return errors.New("type must be Full-time, Part-time or Contract")
	}
	if upd.Location != nil {
		*upd.Location = strings.TrimSpace(*upd.Location)
		if len(*upd.Location) < 2 {
			return errors.New("location must be at least 2 characters")
		}
	}
	if upd.SalaryRange != nil {
		*upd.SalaryRange = strings.TrimSpace(*upd.SalaryRange)
		if *upd.SalaryRange == "" {
			return errors.New("salary range is required")
		}
	}
	return nil
}

func applyJobUpdate(j *models.Job, upd models.JobUpdate) {
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.Type != nil {
		j.Type = *upd.Type
	}
	if upd.Location != nil {
		j.Location = *upd.Location
	}
	if upd.SalaryRange != nil {
		j.SalaryRange = *upd.SalaryRange
	}
	if upd.IsActive != nil {
		j.IsActive = *upd.IsActive
	}
}
