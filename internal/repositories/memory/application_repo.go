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

type ApplicationRepo struct {
	mu   sync.RWMutex
	apps map[primitive.ObjectID]models.Application
}

func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{apps: map[primitive.ObjectID]models.Application{}}
}

func (r *ApplicationRepo) Insert(_ context.Context, a *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	r.apps[a.ID] = *a
	return nil
}

func (r *ApplicationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	out := a
	return &out, nil
}

func (r *ApplicationRepo) List(_ context.Context, jobIDs []primitive.ObjectID) ([]models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var allow map[primitive.ObjectID]struct{}
	if jobIDs != nil {
		allow = make(map[primitive.ObjectID]struct{}, len(jobIDs))
		for _, id := range jobIDs {
			allow[id] = struct{}{}
		}
	}

	var out []models.Application
	for _, a := range r.apps {
		if allow != nil {
			if _, ok := allow[a.JobID]; !ok {
				continue
			}
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *ApplicationRepo) SetStatus(_ context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return utils.ErrNotFound
	}
	a.Status = status
	r.apps[id] = a
	return nil
}
