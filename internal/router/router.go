package router

import (
	"time"

	"rescribe/config"
	"rescribe/internal/handler"
	"rescribe/internal/middleware"
	"rescribe/internal/repository"
	"rescribe/internal/service"
	"rescribe/pkg/keystore"
	"rescribe/pkg/payment"
	"rescribe/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	Keys            keystore.Store
	Detector        service.Detector
	PaymentProvider payment.Provider
	ObjectStore     storage.ObjectStore // nil when not configured
}

func Setup(cfg *config.Config, db *gorm.DB, deps Deps) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Skip gin.Logger() to reduce log noise; use gin.Default() if you need request logging
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// Repositories
	userRepo := repository.NewUserRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	rewriteSvc := service.NewRewriteService(cfg, userRepo, jobRepo, deps.Keys, deps.Detector)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userRepo)
	rewriteHandler := handler.NewRewriteHandler(rewriteSvc, userRepo)
	uploadHandler := handler.NewUploadHandler(docRepo, rewriteSvc, deps.ObjectStore)
	downloadHandler := handler.NewDownloadHandler()
	keysHandler := handler.NewKeysHandler(deps.Keys)
	materialsHandler := handler.NewMaterialsHandler(docRepo, jobRepo, deps.ObjectStore)
	paymentHandler := handler.NewPaymentHandler(cfg, deps.PaymentProvider, userRepo)
	catalogHandler := handler.NewCatalogHandler()

	requireAuth := middleware.AuthRequired(&cfg.JWT)
	optionalAuth := middleware.AuthOptional(&cfg.JWT)

	// Auth runs before the limiter so signed-in callers are bucketed by
	// account rather than by IP.
	limiter := middleware.NewRateLimiter(100, 60*time.Second)
	api := r.Group("/api", optionalAuth, middleware.RateLimit(limiter))
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		api.GET("/pricing", paymentHandler.Pricing)
		api.GET("/presets", catalogHandler.Presets)
		api.GET("/writing-samples", catalogHandler.WritingSamples)
		api.POST("/stripe/webhook", paymentHandler.Webhook)

		// Anonymous use is allowed for the rewrite workbench; a bearer
		// token attaches ownership and the credit ledger.
		open := api.Group("")
		{
			open.POST("/analyze-text", rewriteHandler.Analyze)
			open.POST("/rewrite", rewriteHandler.Rewrite)
			open.POST("/re-rewrite/:jobId", rewriteHandler.ReRewrite)
			open.POST("/chat", rewriteHandler.Chat)
			open.POST("/upload", uploadHandler.Upload)
			open.POST("/pdf/extract", uploadHandler.ExtractPDF)
			open.POST("/download/:format", downloadHandler.Download)
			open.POST("/set-keys", keysHandler.SetKeys)
		}

		authed := api.Group("", requireAuth)
		{
			authed.GET("/user", authHandler.Me)
			authed.GET("/user/materials", materialsHandler.Materials)
			authed.POST("/create-payment-intent", paymentHandler.CreateIntent)
		}
	}

	r.GET("/ws/chat", handler.UpgradeChatWS(&cfg.JWT, rewriteSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
