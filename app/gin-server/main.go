package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/medxhealth/medx/config"
	"github.com/medxhealth/medx/internal/api/handlers"
	"github.com/medxhealth/medx/internal/api/middleware"
	"github.com/medxhealth/medx/internal/api/routes"
	"github.com/medxhealth/medx/internal/auth"
	"github.com/medxhealth/medx/internal/cache"
	"github.com/medxhealth/medx/internal/logger"
	mongorepo "github.com/medxhealth/medx/internal/repositories/mongo"
	"github.com/medxhealth/medx/internal/services"
	"github.com/medxhealth/medx/internal/storage"
)

const tokenTTL = 7 * 24 * time.Hour

func main() {
	_ = godotenv.Load()
	log := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	log.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	var c cache.Cache
	if os.Getenv("REDIS_ADDR") != "" || os.Getenv("REDIS_URI") != "" || os.Getenv("REDIS_URL") != "" {
		if err := config.InitRedis(); err != nil {
			log.Warnf("Redis init error, continuing without cache: %v", err)
		} else {
			c = cache.NewRedisCache(config.RedisClient)
			log.Info("Redis connected")
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	tokens := auth.NewTokenManager(secret, tokenTTL)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcsUploader, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcsUploader.Close()
		uploader = gcsUploader
	} else {
		localUploader, err := storage.NewLocalUploader(uploadDir)
		if err != nil {
			log.Fatalf("upload dir error: %v", err)
		}
		uploader = localUploader
	}

	db := config.MongoDatabase()
	users := mongorepo.NewUserRepo(db)
	hospitals := mongorepo.NewHospitalRepo(db)
	jobs := mongorepo.NewJobRepo(db)
	applications := mongorepo.NewApplicationRepo(db)

	authSvc := services.NewAuthService(users, hospitals, tokens)
	jobSvc := services.NewJobService(jobs, hospitals, c)
	appSvc := services.NewApplicationService(applications, jobs)
	hospitalSvc := services.NewHospitalService(hospitals, users, c)
	uploadSvc := services.NewUploadService(uploader)

	secureCookies := os.Getenv("APP_ENV") == "production"

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	if os.Getenv("GCS_BUCKET") == "" {
		r.Static("/uploads", uploadDir)
	}

	routes.RegisterRoutes(r, routes.Deps{
		Tokens:       tokens,
		Auth:         handlers.NewAuthHandler(authSvc, tokenTTL, secureCookies),
		Jobs:         handlers.NewJobHandler(jobSvc),
		Applications: handlers.NewApplicationHandler(appSvc),
		Hospitals:    handlers.NewHospitalHandler(hospitalSvc),
		Upload:       handlers.NewUploadHandler(uploadSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
