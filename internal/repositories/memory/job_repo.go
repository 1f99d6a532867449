package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobRepo struct {
	mu   sync.RWMutex
	jobs map[primitive.ObjectID]models.Job
}

func NewJobRepo() *JobRepo {
	return &JobRepo{jobs: map[primitive.ObjectID]models.Job{}}
}

func (r *JobRepo) Insert(_ context.Context, j *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID.IsZero() {
		j.ID = primitive.NewObjectID()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	r.jobs[j.ID] = *j
	return nil
}

func (r *JobRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	out := j
	return &out, nil
}

func (r *JobRepo) sortedActive() []models.Job {
	var out []models.Job
	for _, j := range r.jobs {
		if j.IsActive {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out
}

func (r *JobRepo) FindActive(_ context.Context, skip, limit int64) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	active := r.sortedActive()
	if skip >= int64(len(active)) {
		return nil, nil
	}
	active = active[skip:]
	if limit < int64(len(active)) {
		active = active[:limit]
	}
	return active, nil
}

func (r *JobRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.sortedActive())), nil
}

func (r *JobRepo) IDsByHospital(_ context.Context, hospitalID primitive.ObjectID) ([]primitive.ObjectID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := []primitive.ObjectID{}
	for _, j := range r.jobs {
		if j.HospitalID == hospitalID {
			ids = append(ids, j.ID)
		}
	}
	return ids, nil
}

func (r *JobRepo) Update(_ context.Context, id primitive.ObjectID, upd models.JobUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return utils.ErrNotFound
	}
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
	r.jobs[id] = j
	return nil
}

func (r *JobRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}
