package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/quizmint/quizadmin-api/api"
	"github.com/quizmint/quizadmin-api/internal/config"
	"github.com/quizmint/quizadmin-api/internal/database"
	"github.com/quizmint/quizadmin-api/internal/handlers"
	"github.com/quizmint/quizadmin-api/internal/i18n"
	"github.com/quizmint/quizadmin-api/internal/logging"
	"github.com/quizmint/quizadmin-api/internal/middleware"
	"github.com/quizmint/quizadmin-api/internal/services"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// 2. Logger
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// 3. Message catalogues, loaded once and read-only afterwards
	if err := i18n.Load(); err != nil {
		logger.Fatal("failed to load message catalogues", zap.Error(err))
	}

	// 4. Mailer
	if err := utils.InitMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword); err != nil {
		logger.Warn("mailer unavailable, invite emails will not be sent", zap.Error(err))
	}

	// 5. MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	db := client.Database(cfg.DBName)

	if err := database.EnsureIndexes(db); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}
	if err := database.SeedDefaultRoles(db, logger); err != nil {
		logger.Fatal("failed to seed default roles", zap.Error(err))
	}
	if err := database.SeedSuperAdmin(db, cfg.SeedAdminEmail, cfg.SeedAdminPassword, logger); err != nil {
		logger.Fatal("failed to seed super admin", zap.Error(err))
	}

	// 6. Optional redis cache for role-permission lookups
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unavailable, role cache disabled", zap.Error(err))
			cache = nil
		}
	}

	// 7. Services
	roleService := services.NewRoleService(db, cache, logger)
	adminService := services.NewAdminService(db, roleService, logger)
	authService := services.NewAuthService(adminService, []byte(cfg.JWTSecret), logger)
	countryService := services.NewCountryService(db)
	topicService := services.NewTopicService(db)
	docService := services.NewDocumentationService(db)
	questionService := services.NewQuestionService(db)
	testService := services.NewTestService(db)
	playerService := services.NewPlayerService(db)
	feedbackService := services.NewFeedbackService(db)

	var uploadService *services.UploadService
	if cfg.CloudinaryCloudName != "" {
		uploadService, err = services.NewUploadService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Fatal("failed to initialize upload service", zap.Error(err))
		}
	}

	// 8. Handlers
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	roleHandler := handlers.NewRoleHandler(roleService)
	countryHandler := handlers.NewCountryHandler(countryService)
	topicHandler := handlers.NewTopicHandler(topicService)
	docHandler := handlers.NewDocumentationHandler(docService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	testHandler := handlers.NewTestHandler(testService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// 9. Middleware and router
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.JWTSecret), adminService, roleService, logger)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogging(logger))
	router.Use(middleware.Language)
	api.SetupRoutes(router, authMiddleware,
		authHandler, adminHandler, roleHandler, countryHandler, topicHandler,
		docHandler, questionHandler, testHandler, playerHandler, feedbackHandler,
		uploadHandler)

	handlerWithCORS := cors.AllowAll().Handler(router)

	// 10. HTTP server
	logger.Info("server starting", zap.String("port", cfg.Port))
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlerWithCORS,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
