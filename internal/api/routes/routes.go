package routes

import (
	"growth-roadmap-backend/internal/api/handlers"
	"growth-roadmap-backend/internal/api/middleware"
	"growth-roadmap-backend/internal/auth"
	"growth-roadmap-backend/internal/config"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/generator"
	"growth-roadmap-backend/internal/repository"
	"growth-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// newContentGenerator returns nil when no generator URL is configured
func newContentGenerator(cfg *config.Config) (generator.ContentGenerator, error) {
	client, err := generator.NewClient(generator.Config{
		BaseURL:      cfg.ContentGeneratorURL,
		TokenURL:     cfg.ContentGeneratorTokenURL,
		ClientID:     cfg.ContentGeneratorClientID,
		ClientSecret: cfg.ContentGeneratorClientSecret,
		Timeout:      cfg.ContentGeneratorTimeout(),
	})
	if err != nil {
		if apperrors.IsConfiguration(err) {
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	gen, err := newContentGenerator(cfg)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		logrus.Warn("CONTENT_GENERATOR_URL is not set; roadmap generation and regeneration are disabled")
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	return NewRouter(db, cfg, gen, authService), nil
}

// NewRouter builds the engine from already constructed dependencies. gen may
// be nil.
func NewRouter(db *gorm.DB, cfg *config.Config, gen generator.ContentGenerator, authService *auth.AuthService) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	phaseRepo := repository.NewPhaseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	completionRepo := repository.NewTaskCompletionRepository(db)
	keyResultRepo := repository.NewKeyResultRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	phaseService := service.NewPhaseService(phaseRepo, taskRepo, completionRepo, keyResultRepo, organizationRepo, gen,
		service.PhaseServiceOptions{
			MaxRegenerations: cfg.MaxPhaseRegenerations,
			PreviewLimit:     cfg.ActivationPreviewLimit,
		})
	taskService := service.NewTaskService(taskRepo, completionRepo, keyResultRepo, organizationRepo, phaseService, validator)
	okrService := service.NewOKRService(keyResultRepo, organizationRepo, phaseService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, gen != nil)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	roadmapHandler := handlers.NewRoadmapHandler(phaseService)
	okrHandler := handlers.NewOKRHandler(okrService)
	taskHandler := handlers.NewTaskHandler(taskService)

	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", authMiddleware.RequireRole(auth.RoleAdmin), organizationHandler.ListOrganizations)
			organizations.POST("", authMiddleware.RequireRole(auth.RoleAdmin), organizationHandler.CreateOrganization)
		}

		// Organization scoped routes
		org := v1.Group("/organizations/:id")
		org.Use(authMiddleware.RequireOrganization("id"))
		{
			org.GET("", organizationHandler.GetOrganization)

			org.GET("/roadmap", roadmapHandler.GetRoadmap)
			org.POST("/roadmap/generate", roadmapHandler.GenerateRoadmap)
			org.POST("/roadmap/recompute", roadmapHandler.Recompute)

			phases := org.Group("/phases/:number")
			{
				phases.GET("/activation-preview", roadmapHandler.ActivationPreview)
				phases.POST("/activate", roadmapHandler.Activate)
				phases.POST("/regenerate", roadmapHandler.Regenerate)
				phases.POST("/skip", authMiddleware.RequireRole(auth.RoleAdmin), roadmapHandler.Skip)
			}

			org.GET("/okrs/status", okrHandler.GetStatus)
			org.POST("/key-results", okrHandler.CreateKeyResult)
			org.GET("/key-results/:krId/progress", okrHandler.GetObjectiveProgress)
			org.PUT("/key-results/:krId/progress", okrHandler.UpdateKeyResultProgress)

			org.POST("/tasks", taskHandler.CreateTask)
			org.GET("/tasks", taskHandler.ListTasks)
			org.POST("/tasks/:taskId/completions", taskHandler.RecordCompletion)

			org.GET("/task-completions", taskHandler.ListCompletions)
			org.POST("/task-completions/:completionId/validate",
				authMiddleware.RequireRole(auth.RoleLeader, auth.RoleAdmin), taskHandler.ValidateCompletion)
		}
	}

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, false)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
