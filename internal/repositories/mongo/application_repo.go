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

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	// List returns applications newest-first. A nil jobIDs slice means no
	// job filter; an empty non-nil slice matches nothing.
	List(ctx context.Context, jobIDs []primitive.ObjectID) ([]models.Application, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error
}

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &applicationRepo{col: db.Collection("applications")}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return nil
}

func (r *applicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var a models.Application
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) List(ctx context.Context, jobIDs []primitive.ObjectID) ([]models.Application, error) {
	filter := bson.M{}
	if jobIDs != nil {
		filter["job_id"] = bson.M{"$in": jobIDs}
	}

	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []models.Application
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
