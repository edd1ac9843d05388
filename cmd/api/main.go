package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/student-management-api/api/swagger"
	"github.com/noah-isme/student-management-api/internal/handler"
	"github.com/noah-isme/student-management-api/internal/mapper"
	"github.com/noah-isme/student-management-api/internal/middleware"
	"github.com/noah-isme/student-management-api/internal/repository"
	"github.com/noah-isme/student-management-api/internal/service"
	"github.com/noah-isme/student-management-api/pkg/config"
	"github.com/noah-isme/student-management-api/pkg/database"
	"github.com/noah-isme/student-management-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-management-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-management-api/pkg/middleware/requestid"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// @title Student Management API
// @version 1.0.0
// @description Students, courses, enrollments and grades
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := mapper.Verify(); err != nil {
		logr.Fatal("mapper verification failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	metrics := service.NewMetricsService()
	validate := service.NewValidator()

	studentRepo := repository.NewStudentRepository(db, metrics)
	courseRepo := repository.NewCourseRepository(db, metrics)
	enrollmentRepo := repository.NewEnrollmentRepository(db, metrics)
	gradeRepo := repository.NewGradeRepository(db, metrics)

	studentSvc := service.NewStudentService(studentRepo, enrollmentRepo, validate, metrics, logr)
	courseSvc := service.NewCourseService(courseRepo, enrollmentRepo, validate, metrics, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, validate, metrics, logr)
	gradeSvc := service.NewGradeService(gradeRepo, validate, metrics, logr)
	transcriptSvc := service.NewTranscriptService(studentRepo, courseRepo, enrollmentRepo, gradeRepo, logr)

	pages := handler.PageParser{DefaultSize: cfg.Pagination.DefaultSize, MaxSize: cfg.Pagination.MaxSize}
	handlers := handler.Handlers{
		System:      handler.NewSystemHandler(version, metrics, db),
		Students:    handler.NewStudentHandler(studentSvc, pages),
		Courses:     handler.NewCourseHandler(courseSvc, pages),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc, pages),
		Grades:      handler.NewGradeHandler(gradeSvc, pages),
		Transcripts: handler.NewTranscriptHandler(transcriptSvc),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	routes := handler.RouteOptions{APIPrefix: cfg.APIPrefix}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metrics))
		routes.MetricsPath = cfg.Metrics.Path
	}
	handler.RegisterRoutes(r, handlers, routes)

	if cfg.Docs.Enabled && cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
}
