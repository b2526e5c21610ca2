// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/config"
	"github.com/tab1k/tbd-back/internal/handlers"
	"github.com/tab1k/tbd-back/internal/middleware"
	"github.com/tab1k/tbd-back/internal/services"
	"github.com/tab1k/tbd-back/internal/translation"
	"github.com/tab1k/tbd-back/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	translateService := services.NewTranslateService(cfg.Translator)
	lifecycle := translation.NewLifecycle(translateService)
	notificationService := services.NewNotificationService(db, cfg.Email, nil)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage service: ", err)
	}

	authService := services.NewAuthService(db, cfg)
	contentService := services.NewContentService(db, lifecycle)
	requestService := services.NewRequestService(db, notificationService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	newsHandler := handlers.NewNewsHandler(contentService)
	caseHandler := handlers.NewCaseHandler(contentService)
	teamHandler := handlers.NewTeamHandler(contentService)
	mediaHandler := handlers.NewMediaHandler(contentService)
	requestHandler := handlers.NewRequestHandler(requestService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.Language())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Public site content
		home := v1.Group("/home")
		home.Use(middleware.OptionalAuth())
		{
			home.GET("/news", newsHandler.List)
			home.GET("/news/:id", newsHandler.Get)
			home.GET("/cases", caseHandler.List)
			home.GET("/cases/:id", caseHandler.Get)
			home.GET("/team", teamHandler.List)
			home.GET("/team/:id", teamHandler.Get)
			home.GET("/videos", mediaHandler.ListVideos)
			home.GET("/videos/:id", mediaHandler.GetVideo)
			home.GET("/logos", mediaHandler.ListLogos)
			home.GET("/logos/:id", mediaHandler.GetLogo)
		}

		// Contact requests (public submission)
		v1.POST("/requests", middleware.ContactRateLimit(), requestHandler.Submit)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			adminNews := admin.Group("/news")
			{
				adminNews.GET("", newsHandler.List)
				adminNews.POST("", newsHandler.Create)
				adminNews.GET("/:id", newsHandler.Get)
				adminNews.PATCH("/:id", newsHandler.Update)
				adminNews.DELETE("/:id", newsHandler.Delete)
			}

			adminCases := admin.Group("/cases")
			{
				adminCases.GET("", caseHandler.List)
				adminCases.POST("", caseHandler.Create)
				adminCases.GET("/:id", caseHandler.Get)
				adminCases.PATCH("/:id", caseHandler.Update)
				adminCases.DELETE("/:id", caseHandler.Delete)
				adminCases.POST("/:id/images", caseHandler.AddImage)
				adminCases.DELETE("/:id/images/:image_id", caseHandler.DeleteImage)
			}

			adminTeam := admin.Group("/team")
			{
				adminTeam.GET("", teamHandler.List)
				adminTeam.POST("", teamHandler.Create)
				adminTeam.GET("/:id", teamHandler.Get)
				adminTeam.PATCH("/:id", teamHandler.Update)
				adminTeam.DELETE("/:id", teamHandler.Delete)
			}

			adminVideos := admin.Group("/videos")
			{
				adminVideos.GET("", mediaHandler.ListVideos)
				adminVideos.POST("", mediaHandler.CreateVideo)
				adminVideos.GET("/:id", mediaHandler.GetVideo)
				adminVideos.PATCH("/:id", mediaHandler.UpdateVideo)
				adminVideos.DELETE("/:id", mediaHandler.DeleteVideo)
			}

			adminLogos := admin.Group("/logos")
			{
				adminLogos.GET("", mediaHandler.ListLogos)
				adminLogos.POST("", mediaHandler.CreateLogo)
				adminLogos.GET("/:id", mediaHandler.GetLogo)
				adminLogos.PATCH("/:id", mediaHandler.UpdateLogo)
				adminLogos.DELETE("/:id", mediaHandler.DeleteLogo)
			}

			adminRequests := admin.Group("/requests")
			{
				adminRequests.GET("", requestHandler.List)
				adminRequests.DELETE("/:id", requestHandler.Delete)
			}

			admin.POST("/upload/:category", middleware.UploadRateLimit(), uploadHandler.Upload)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
