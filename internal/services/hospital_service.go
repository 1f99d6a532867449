package services

import (
	"context"
	"errors"
	"time"

	"github.com/medxhealth/medx/internal/cache"
	"github.com/medxhealth/medx/internal/models"
	mongorepo "github.com/medxhealth/medx/internal/repositories/mongo"
	"github.com/medxhealth/medx/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const hospitalCacheTTL = 60 * time.Second

// CreatorSummary is the account subset joined into the admin hospital list.
type CreatorSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HospitalListItem struct {
	models.Hospital
	CreatedBy *CreatorSummary `json:"created_by,omitempty"`
}

type HospitalService interface {
	List(ctx context.Context) ([]HospitalListItem, error)
	Get(ctx context.Context, id string) (*models.Hospital, error)
}

type hospitalService struct {
	hospitals mongorepo.HospitalRepository
	users     mongorepo.UserRepository
	cache     cache.Cache // optional
}

func NewHospitalService(hospitals mongorepo.HospitalRepository, users mongorepo.UserRepository, c cache.Cache) HospitalService {
	return &hospitalService{hospitals: hospitals, users: users, cache: c}
}

func (s *hospitalService) List(ctx context.Context) ([]HospitalListItem, error) {
	const op = "HospitalService.List"

	hospitals, err := s.hospitals.FindAll(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list hospitals", err)
	}

	creatorIDs := make([]primitive.ObjectID, 0, len(hospitals))
	for _, h := range hospitals {
		creatorIDs = append(creatorIDs, h.CreatedByUserID)
	}
	creators := map[primitive.ObjectID]*CreatorSummary{}
	if users, err := s.users.FindByIDs(ctx, creatorIDs); err == nil {
		for _, u := range users {
			creators[u.ID] = &CreatorSummary{Name: u.Name, Email: u.Email}
		}
	}

	items := make([]HospitalListItem, 0, len(hospitals))
	for _, h := range hospitals {
		items = append(items, HospitalListItem{Hospital: h, CreatedBy: creators[h.CreatedByUserID]})
	}
	return items, nil
}

func (s *hospitalService) Get(ctx context.Context, id string) (*models.Hospital, error) {
	const op = "HospitalService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "hospital not found", nil)
	}

	cacheKey := "hospital:" + id
	if s.cache != nil {
		var cached models.Hospital
		if hit, _ := s.cache.GetJSON(ctx, cacheKey, &cached); hit {
			return &cached, nil
		}
	}

	hospital, err := s.hospitals.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "hospital not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get hospital", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, hospital, hospitalCacheTTL)
	}
	return hospital, nil
}
