package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/teacher-portal-api/api/swagger"
	"github.com/noah-isme/teacher-portal-api/internal/handler"
	"github.com/noah-isme/teacher-portal-api/internal/middleware"
	"github.com/noah-isme/teacher-portal-api/internal/repository"
	"github.com/noah-isme/teacher-portal-api/internal/service"
	"github.com/noah-isme/teacher-portal-api/pkg/cache"
	"github.com/noah-isme/teacher-portal-api/pkg/config"
	"github.com/noah-isme/teacher-portal-api/pkg/database"
	"github.com/noah-isme/teacher-portal-api/pkg/export"
	"github.com/noah-isme/teacher-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/teacher-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/teacher-portal-api/pkg/middleware/requestid"
)

// @title Teacher Portal API
// @version 1.0.0
// @description Class assignments, marks, attendance, timetable and reports for teaching staff
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	examRepo := repository.NewExamRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(
		userRepo,
		tokenRepo,
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Expiration,
		cfg.JWT.RefreshExpiration,
		logr,
	)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, teacherRepo, logr)
	examSvc := service.NewExamService(examRepo, assignmentSvc, studentRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, assignmentSvc, studentRepo, validate, logr)
	timetableSvc := service.NewTimetableService(slotRepo, cacheRepo, cfg.Cache.TTL, logr)
	substituteSvc := service.NewSubstituteService(slotRepo, teacherRepo, logr)
	reportSvc := service.NewReportService(
		assignmentSvc,
		studentRepo,
		attendanceRepo,
		examRepo,
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		service.ReportStandards{
			Attendance: int(cfg.Academic.AttendanceStandard),
			CIE:        cfg.Academic.CIEStandard,
			CIELimit:   cfg.Academic.CIELimit,
			CIEDivisor: cfg.Academic.CIEDivisor,
		},
		logr,
	)
	dashboardSvc := service.NewDashboardService(assignmentRepo, examRepo, slotRepo, attendanceRepo, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, authSvc, handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Dashboard:  handler.NewDashboardHandler(dashboardSvc, assignmentSvc),
		Assignment: handler.NewAssignmentHandler(assignmentSvc),
		Exam:       handler.NewExamHandler(examSvc, assignmentSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc, assignmentSvc),
		Timetable:  handler.NewTimetableHandler(timetableSvc, substituteSvc, assignmentSvc),
		Report:     handler.NewReportHandler(reportSvc, assignmentSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
		return
	}
	logr.Sugar().Infow("server stopped")
}
