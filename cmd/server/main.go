package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/chatbot"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/config"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/email"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/handler"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/router"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/storage"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/util"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 3. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db)

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	store, err := storage.NewClient(cfg)
	if err != nil {
		logger.Error("Failed to init storage client", "error", err)
		os.Exit(1)
	}
	mailer := email.NewMailer(cfg)
	assistant := chatbot.NewAssistant(cfg)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	gate := auth.NewGate(tokens, service.NewDirectory(repo), nil, logger)

	authSvc := service.NewAuthService(repo, tokens, logger)
	userSvc := service.NewUserService(repo, mailer, logger)
	courseSvc := service.NewCourseService(repo, logger)
	lessonSvc := service.NewLessonService(repo, store, logger)
	assignmentSvc := service.NewAssignmentService(repo, store, logger)
	submissionSvc := service.NewSubmissionService(repo, logger)
	enrollmentSvc := service.NewEnrollmentService(repo, logger)
	referenceSvc := service.NewReferenceService(repo, logger)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, tokens.RefreshExpiry()),
		User:       handler.NewUserHandler(userSvc),
		Course:     handler.NewCourseHandler(courseSvc),
		Lesson:     handler.NewLessonHandler(lessonSvc),
		Assignment: handler.NewAssignmentHandler(assignmentSvc),
		Submission: handler.NewSubmissionHandler(submissionSvc, userSvc),
		Enrollment: handler.NewEnrollmentHandler(enrollmentSvc),
		Reference:  handler.NewReferenceHandler(referenceSvc, courseSvc),
		Document:   handler.NewDocumentHandler(store),
		Chatbot:    handler.NewChatbotHandler(assistant),
	}

	// 4. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, handlers, gate, "static")

	// 5. Start the auto-grading scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go service.NewAutoGrader(repo, cfg.AutoGradeInterval, logger).Run(schedulerCtx)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopScheduler()

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
