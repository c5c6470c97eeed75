package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/blacha370/Image-Service/internal/adapter/handler"
	"github.com/blacha370/Image-Service/internal/adapter/repository/postgres"
	"github.com/blacha370/Image-Service/internal/infrastructure/auth"
	"github.com/blacha370/Image-Service/internal/infrastructure/cache"
	"github.com/blacha370/Image-Service/internal/infrastructure/config"
	"github.com/blacha370/Image-Service/internal/infrastructure/database"
	"github.com/blacha370/Image-Service/internal/infrastructure/middleware"
	"github.com/blacha370/Image-Service/internal/infrastructure/observability"
	"github.com/blacha370/Image-Service/internal/infrastructure/server"
	"github.com/blacha370/Image-Service/internal/infrastructure/storage"
	authUC "github.com/blacha370/Image-Service/internal/usecase/auth"
	"github.com/blacha370/Image-Service/internal/usecase/image"
	"github.com/blacha370/Image-Service/internal/usecase/link"
	"github.com/blacha370/Image-Service/internal/usecase/tier"
	"github.com/blacha370/Image-Service/internal/usecase/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	sizeRepo := postgres.NewSizeRepo(pool)
	tierRepo := postgres.NewTierRepo(pool)
	subRepo := postgres.NewSubscriptionRepo(pool)
	imageRepo := postgres.NewImageRepo(pool)
	thumbRepo := postgres.NewThumbnailRepo(pool)
	linkRepo := postgres.NewLinkRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	thumbnailer := storage.NewThumbnailer()

	// Use cases
	authSvc := authUC.NewService(userRepo, jwtSvc, passwordHasher)
	tierSvc := tier.NewService(sizeRepo, tierRepo, subRepo)
	uploadSvc := upload.NewService(imageRepo, thumbRepo, subRepo, s3Storage, thumbnailer)
	imageSvc := image.NewService(imageRepo, thumbRepo)
	linkSvc := link.NewService(linkRepo, imageRepo, subRepo, s3Storage)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	tierHandler := handler.NewTierHandler(tierSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	imageHandler := handler.NewImageHandler(imageSvc)
	linkHandler := handler.NewLinkHandler(linkSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		TierHandler:    tierHandler,
		UploadHandler:  uploadHandler,
		ImageHandler:   imageHandler,
		LinkHandler:    linkHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
