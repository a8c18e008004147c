package routes

import (
	"context"
	"fmt"
	"time"

	"cargodeploy-backend/internal/api/handlers"
	"cargodeploy-backend/internal/api/middleware"
	"cargodeploy-backend/internal/auth"
	"cargodeploy-backend/internal/config"
	"cargodeploy-backend/internal/metrics"
	"cargodeploy-backend/internal/repository"
	"cargodeploy-backend/internal/service"
	"cargodeploy-backend/internal/stream"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services holds the long-lived application components shared by the router and
// the background workers started from main.
type Services struct {
	Auth         *auth.AuthService
	Projects     service.ProjectServiceInterface
	Users        service.UserServiceInterface
	Logs         service.LogServiceInterface
	Orchestrator service.OrchestratorInterface
	Reaper       *service.Reaper
	Hub          *stream.Hub
	// Bridge and Redis are nil when REDIS_ADDR is not set
	Bridge *stream.RedisBridge
	Redis  *redis.Client
}

// Close releases what BuildServices opened
func (s *Services) Close() {
	if s.Hub != nil {
		s.Hub.Close()
	}
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
}

// BuildServices wires repositories, the deployment orchestrator and its collaborators
func BuildServices(db *gorm.DB, cfg *config.Config) (*Services, error) {
	// Initialize validator
	validate := validator.New()
	if err := service.RegisterValidations(validate); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	deploymentRepo := repository.NewDeploymentRepository(db)
	logRepo := repository.NewLogRepository(db)

	svc := &Services{Auth: authService, Hub: stream.NewHub()}

	// Redis lets several replicas share project locks and live log streams
	var publisher stream.Publisher = svc.Hub
	var locker service.ProjectLocker = service.NewKeyedLocker()
	if cfg.RedisAddr != "" {
		svc.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := svc.Redis.Ping(ctx).Err(); err != nil {
			svc.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		svc.Bridge = stream.NewRedisBridge(svc.Redis, svc.Hub)
		publisher = svc.Bridge
		locker = service.NewRedisLocker(svc.Redis, 0)
	}

	var credentials service.CredentialProvider
	var inspector service.InstallationInspector
	if cfg.GitHubAppConfigured() {
		creds, err := service.NewGitHubAppCredentials(cfg.GitHubAppID, []byte(cfg.GitHubAppPrivateKey), cfg.GitHubAPIURL)
		if err != nil {
			svc.Close()
			return nil, err
		}
		credentials = creds
		inspector = creds
	} else {
		logrus.Warn("GitHub App is not configured; private repositories cannot be deployed")
	}

	logService := service.NewLogService(logRepo, deploymentRepo, publisher)
	orchestrator := service.NewOrchestrator(service.OrchestratorDeps{
		Projects:    projectRepo,
		Deployments: deploymentRepo,
		Users:       userRepo,
		Trigger:     service.NewBuildService(cfg.BuildServiceURL, cfg.BuildServiceTimeout()),
		Credentials: credentials,
		Sink:        logService,
		Locker:      locker,
		Metrics:     metrics.New(prometheus.DefaultRegisterer),
	})

	svc.Logs = logService
	svc.Orchestrator = orchestrator
	svc.Projects = service.NewProjectService(projectRepo, deploymentRepo, userRepo, orchestrator, validate, cfg.DefaultQuotaLimit)
	svc.Users = service.NewUserService(userRepo, projectRepo, inspector, validate, cfg.DefaultQuotaLimit)
	svc.Reaper = service.NewReaper(deploymentRepo, orchestrator, logService, cfg.StuckDeploymentTimeout(), cfg.ReaperInterval())
	return svc, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, svc *Services) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, svc.Redis)
	projectHandler := handlers.NewProjectHandler(svc.Projects)
	userHandler := handlers.NewUserHandler(svc.Users)
	deploymentHandler := handlers.NewDeploymentHandler(svc.Projects, svc.Logs, svc.Hub, cfg.AllowedOrigins)
	callbackHandler := handlers.NewCallbackHandler(svc.Orchestrator, svc.Logs)
	authMiddleware := auth.NewAuthMiddleware(svc.Auth)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		me := v1.Group("/users/me")
		{
			me.GET("", userHandler.GetCurrentUser)
			me.PATCH("", userHandler.UpdateCurrentUser)
			me.PUT("/installation", userHandler.LinkInstallation)
			me.GET("/repositories", userHandler.ListRepositories)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/slug-availability", projectHandler.CheckSlugAvailability)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/deployments", projectHandler.ListDeployments)
			projects.POST("/:id/deployments", projectHandler.Redeploy)
		}

		deployments := v1.Group("/deployments")
		{
			deployments.GET("/:id", deploymentHandler.GetDeployment)
			deployments.GET("/:id/logs", deploymentHandler.GetLogs)
			deployments.GET("/:id/stream", deploymentHandler.Stream)
		}
	}

	// Build service routes, authenticated with the shared API key
	internal := router.Group("/api/internal")
	internal.Use(auth.RequireAPIKey(cfg.CallbackAPIKey))
	{
		internal.POST("/deployments/callback", callbackHandler.ResolveDeployment)
		internal.POST("/deployments/:id/logs", callbackHandler.AppendLogs)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
