package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalRepository interface {
	Insert(ctx context.Context, h *models.Hospital) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hospital, error)
	FindByCreator(ctx context.Context, userID primitive.ObjectID) (*models.Hospital, error)
	FindAll(ctx context.Context) ([]models.Hospital, error)
}

type hospitalRepo struct {
	col *mongo.Collection
}

func NewHospitalRepo(db *mongo.Database) HospitalRepository {
	return &hospitalRepo{col: db.Collection("hospitals")}
}

func (r *hospitalRepo) Insert(ctx context.Context, h *models.Hospital) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, h)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.ID = id
	}
	return nil
}

func (r *hospitalRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hospital, error) {
	var h models.Hospital
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &h, err
}

func (r *hospitalRepo) FindByCreator(ctx context.Context, userID primitive.ObjectID) (*models.Hospital, error) {
	var h models.Hospital
	err := r.col.FindOne(ctx, bson.M{"created_by_user_id": userID}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &h, err
}

func (r *hospitalRepo) FindAll(ctx context.Context) ([]models.Hospital, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var hospitals []models.Hospital
	if err := cur.All(ctx, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}
