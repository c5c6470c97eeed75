package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/blacha370/Image-Service/internal/adapter/handler"
	"github.com/blacha370/Image-Service/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handler.AuthHandler
	tierHandler    *handler.TierHandler
	uploadHandler  *handler.UploadHandler
	imageHandler   *handler.ImageHandler
	linkHandler    *handler.LinkHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
}

type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	TierHandler    *handler.TierHandler
	UploadHandler  *handler.UploadHandler
	ImageHandler   *handler.ImageHandler
	LinkHandler    *handler.LinkHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		authHandler:    cfg.AuthHandler,
		tierHandler:    cfg.TierHandler,
		uploadHandler:  cfg.UploadHandler,
		imageHandler:   cfg.ImageHandler,
		linkHandler:    cfg.LinkHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public link resolution stays outside the versioned API so issued URLs
	// survive API version bumps.
	r.engine.GET("/link/:name", r.linkHandler.Resolve)

	api := r.engine.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		upload := api.Group("/upload")
		upload.Use(r.authMiddleware.RequireAuth())
		{
			upload.POST("", r.uploadHandler.Upload)
		}

		images := api.Group("/images")
		images.Use(r.authMiddleware.RequireAuth())
		{
			images.GET("", r.imageHandler.List)
			images.GET("/details", r.imageHandler.ListDetails)
			images.GET("/details/:name", r.imageHandler.GetDetails)
		}

		links := api.Group("/link")
		links.Use(r.authMiddleware.RequireAuth())
		{
			links.POST("", r.linkHandler.Generate)
		}

		admin := api.Group("/admin")
		admin.Use(r.authMiddleware.RequireAuth())
		{
			admin.POST("/sizes", r.tierHandler.CreateSize)
			admin.POST("/tiers", r.tierHandler.CreateTier)
			admin.DELETE("/tiers/:id", r.tierHandler.DeleteTier)
			admin.POST("/subscriptions", r.tierHandler.Subscribe)
			admin.GET("/subscriptions/:account_id", r.tierHandler.GetSubscription)
			admin.PUT("/subscriptions/:account_id", r.tierHandler.ChangeTier)
			admin.DELETE("/subscriptions/:account_id", r.tierHandler.Unsubscribe)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
