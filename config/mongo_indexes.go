package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("uniq_email").
			SetUnique(true),
	})
	if err != nil {
		return err
	}

	jobs := db.Collection("jobs")
	_, err = jobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// public listing: active jobs newest first
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_active_created"),
		},
		// ownership scans for application filtering
		{
			Keys:    bson.D{{Key: "hospital_id", Value: 1}},
			Options: options.Index().SetName("by_hospital"),
		},
	})
	if err != nil {
		return err
	}

	applications := db.Collection("applications")
	_, err = applications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applied_at", Value: -1}},
		Options: options.Index().SetName("by_job_applied"),
	})
	if err != nil {
		return err
	}

	hospitals := db.Collection("hospitals")
	_, err = hospitals.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_by_user_id", Value: 1}},
		Options: options.Index().SetName("by_creator"),
	})
	return err
}
