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
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-club-registry-api/api/swagger"
	"github.com/noah-isme/sma-club-registry-api/internal/handler"
	"github.com/noah-isme/sma-club-registry-api/internal/repository"
	"github.com/noah-isme/sma-club-registry-api/internal/service"
	"github.com/noah-isme/sma-club-registry-api/pkg/cache"
	"github.com/noah-isme/sma-club-registry-api/pkg/config"
	"github.com/noah-isme/sma-club-registry-api/pkg/database"
	"github.com/noah-isme/sma-club-registry-api/pkg/logger"
)

// @title Club Registry API
// @version 0.3.0
// @description School club registry with fetch-level projections
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Fatal("redis connection failed", zap.Error(err))
	}

	var metricsSvc *service.MetricsService
	var observer repository.QueryObserver
	var recorder service.ProjectionRecorder
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		observer = metricsSvc
		recorder = metricsSvc
	}

	clubRepo := repository.NewClubRepository(db, observer)
	studentRepo := repository.NewStudentRepository(db, observer)
	contactRepo := repository.NewContactRepository(db, observer)
	classroomRepo := repository.NewClassroomRepository(db, observer)
	requestRepo := repository.NewClubRequestRepository(db, observer)
	userRepo := repository.NewUserRepository(db, observer)
	healthRepo := repository.NewHealthRepository(db)
	joinLocks := repository.NewJoinLockRepository(redisClient, logr)
	defer joinLocks.Close() //nolint:errcheck

	calendar := service.AcademicCalendar{StartMonth: cfg.Membership.AcademicYearStartMonth}
	validate := validator.New()

	views := service.NewViewBuilder(service.ViewSources{
		Clubs:      clubRepo,
		Students:   studentRepo,
		Contacts:   contactRepo,
		Classrooms: classroomRepo,
		Users:      userRepo,
	}, calendar, recorder)

	authSvc := service.NewAuthService(userRepo, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		Audience:          cfg.JWT.Audience,
	})
	authzSvc := service.NewAuthorizationService(clubRepo, calendar, logr)
	clubSvc := service.NewClubService(clubRepo, views, authzSvc, calendar, validate, logr)
	var lockRecorder interface{ RecordJoinLock(string) }
	if metricsSvc != nil {
		lockRecorder = metricsSvc
	}
	requestSvc := service.NewClubRequestService(
		requestRepo,
		clubRepo,
		views,
		authzSvc,
		joinLocks,
		lockRecorder,
		calendar,
		service.ClubRequestConfig{LockTTL: cfg.Membership.JoinLockTTL},
		validate,
		logr,
	)
	healthSvc := service.NewHealthService(healthRepo, joinLocks, logr)

	listCfg := handler.ListConfig{
		DefaultPageSize: cfg.Projection.DefaultPageSize,
		MaxPageSize:     cfg.Projection.MaxPageSize,
		MaxFetchDepth:   cfg.Projection.MaxFetchDepth,
	}

	r := newRouter(cfg, logr, routes{
		auth:        authSvc,
		metrics:     metricsSvc,
		clubs:       handler.NewClubHandler(clubSvc, requestSvc, listCfg),
		requests:    handler.NewClubRequestHandler(requestSvc, listCfg),
		students:    handler.NewStudentHandler(service.NewStudentService(studentRepo, views, logr), listCfg),
		contacts:    handler.NewContactHandler(service.NewContactService(contactRepo, views, logr), listCfg),
		classrooms:  handler.NewClassroomHandler(service.NewClassroomService(classroomRepo, views, logr), listCfg),
		account:     handler.NewAuthHandler(),
		observation: handler.NewMetricsHandler(metricsSvc, healthSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "redis", joinLocks.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
