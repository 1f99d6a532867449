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

type HospitalRepo struct {
	mu        sync.RWMutex
	hospitals map[primitive.ObjectID]models.Hospital
}

func NewHospitalRepo() *HospitalRepo {
	return &HospitalRepo{hospitals: map[primitive.ObjectID]models.Hospital{}}
}

func (r *HospitalRepo) Insert(_ context.Context, h *models.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID.IsZero() {
		h.ID = primitive.NewObjectID()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	r.hospitals[h.ID] = *h
	return nil
}

func (r *HospitalRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hospitals[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	out := h
	return &out, nil
}

func (r *HospitalRepo) FindByCreator(_ context.Context, userID primitive.ObjectID) (*models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.hospitals {
		if h.CreatedByUserID == userID {
			out := h
			return &out, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *HospitalRepo) FindAll(_ context.Context) ([]models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Hospital, 0, len(r.hospitals))
	for _, h := range r.hospitals {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
