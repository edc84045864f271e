package main

import (
	"log"
	"net/http"
	"os"

	_ "learnhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"learnhub/internal/auth"
	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/db"
	"learnhub/internal/handler"
	"learnhub/internal/mailer"
	"learnhub/internal/repository"
	"learnhub/internal/router"
	"learnhub/internal/service"
)

// @title Learnhub API
// @version 1.0
// @description Course marketplace API with role-based course views, enrollments and session-token authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		db.Reset(gormDB)
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	moduleRepo := repository.NewModuleRepository(gormDB)
	videoRepo := repository.NewVideoRepository(gormDB)
	documentRepo := repository.NewDocumentRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewRedisSessionStore(cacheClient, cfg.SessionTTL)
	otpStore := auth.NewRedisOTPStore(cacheClient, cfg.OTPTTL)
	otpMailer := mailer.NewLogMailer()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore, otpStore, otpMailer)
	userService := service.NewUserService(userRepo, cacheClient)
	courseService := service.NewCourseService(courseRepo, enrollmentRepo, userRepo, cacheClient)
	contentService := service.NewContentService(courseRepo, moduleRepo, videoRepo, documentRepo, cacheClient)
	enrollmentService := service.NewEnrollmentService(courseRepo, enrollmentRepo, cacheClient)
	feedbackService := service.NewFeedbackService(courseRepo, enrollmentRepo, feedbackRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService)
	contentHandler := handler.NewContentHandler(contentService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		courseHandler,
		contentHandler,
		enrollmentHandler,
		feedbackHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
