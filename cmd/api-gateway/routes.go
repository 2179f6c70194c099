package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/handler"
	"github.com/noah-isme/sma-club-registry-api/internal/middleware"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/internal/service"
	"github.com/noah-isme/sma-club-registry-api/pkg/config"
	"github.com/noah-isme/sma-club-registry-api/pkg/logger"
	"github.com/noah-isme/sma-club-registry-api/pkg/response"
	corsmiddleware "github.com/noah-isme/sma-club-registry-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-club-registry-api/pkg/middleware/requestid"
)

type routes struct {
	auth        middleware.Authenticator
	metrics     *service.MetricsService
	clubs       *handler.ClubHandler
	requests    *handler.ClubRequestHandler
	students    *handler.StudentHandler
	contacts    *handler.ContactHandler
	classrooms  *handler.ClassroomHandler
	account     *handler.AuthHandler
	observation *handler.MetricsHandler
}

func newRouter(cfg *config.Config, logr *zap.Logger, h routes) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(logger.GinMiddleware(logr))
	r.Use(response.Version(cfg.APIVersion))
	r.Use(middleware.Metrics(h.metrics))

	r.GET("/health-check", h.observation.Health)
	if h.metrics != nil {
		r.GET("/metrics", h.observation.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	optional := middleware.OptionalJWT(h.auth)
	required := middleware.JWT(h.auth)
	studentsOnly := middleware.RequireRoles(models.RoleStudent)

	clubs := api.Group("/clubs")
	clubs.GET("", optional, h.clubs.List)
	clubs.GET("/:id", optional, h.clubs.Get)
	clubs.PATCH("/:id", required, studentsOnly, h.clubs.Update)
	clubs.POST("/:id/contacts", required, studentsOnly, h.clubs.AddContact)
	clubs.POST("/:id/join", required, studentsOnly, h.clubs.Join)
	clubs.GET("/:id/members/export", required, studentsOnly, h.clubs.ExportMembers)

	requests := api.Group("/join_requests", required)
	requests.GET("", h.requests.List)
	requests.GET("/:id", h.requests.Get)
	requests.PATCH("/:id", studentsOnly, h.requests.Review)

	students := api.Group("/students", required)
	students.GET("", h.students.List)
	students.GET("/:id", h.students.Get)

	contacts := api.Group("/contacts", optional)
	contacts.GET("", h.contacts.List)
	contacts.GET("/:id", h.contacts.Get)

	classrooms := api.Group("/classrooms", required)
	classrooms.GET("", h.classrooms.List)
	classrooms.GET("/:id", h.classrooms.Get)

	api.GET("/auth/me", required, h.account.Me)

	return r
}
