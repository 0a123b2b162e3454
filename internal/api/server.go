package api

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"agensi-backend/internal/app/config"
	"agensi-backend/internal/app/dsn"
	"agensi-backend/internal/app/handler"
	"agensi-backend/internal/app/identity"
	"agensi-backend/internal/app/middleware"
	"agensi-backend/internal/app/redis"
	"agensi-backend/internal/app/repository"
	"agensi-backend/internal/app/storage"
	"agensi-backend/internal/pkg"
)

// StartServer builds every dependency and runs the HTTP server. Redis and
// MinIO are optional at startup: without Redis every request hits the
// provider, without MinIO receipt endpoints return errors, but the rest of
// the API stays up.
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	identityClient, err := identity.NewClient(identity.Config{
		URL:        cfg.Identity.URL,
		AnonKey:    cfg.Identity.AnonKey,
		ServiceKey: cfg.Identity.ServiceKey,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to init identity client")
	}

	var identityCache middleware.IdentityCache
	redisClient, err := redis.New(context.Background(), redis.Config{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		User:        cfg.Redis.User,
		Password:    cfg.Redis.Password,
		DialTimeout: cfg.Redis.DialTimeout,
		ReadTimeout: cfg.Redis.ReadTimeout,
		IdentityTTL: cfg.Redis.IdentityTTL,
	})
	if err != nil {
		logrus.WithError(err).Warn("redis unavailable, identity caching disabled")
	} else {
		identityCache = redisClient
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.WithError(err).Warn("minio unavailable, receipt storage disabled")
		minioClient = nil
	}

	authMiddleware := middleware.NewAuthMiddleware(identityClient, identityCache, repo, cfg)
	manageUsers := handler.NewManageUsersHandler(identityClient, repo)
	apiHandler := handler.NewAPIHandler(repo, minioClient, manageUsers)

	router := gin.Default()
	router.Use(cors.New(handler.CORSConfig()))
	apiHandler.RegisterAPIRoutes(router, authMiddleware)

	app := pkg.NewApp(cfg, router)
	app.RunApp()

	logrus.Info("Server down")
}
