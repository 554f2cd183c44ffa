package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/cake-api/docs"
	v1 "github.com/vietanh2810/cake-api/internal/api/handler/v1"
	"github.com/vietanh2810/cake-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cake-api/internal/api/middleware"
	"github.com/vietanh2810/cake-api/internal/config"
	"github.com/vietanh2810/cake-api/internal/repository"
	"github.com/vietanh2810/cake-api/internal/repository/dao"
	"github.com/vietanh2810/cake-api/internal/service"
)

const (
	basePath = "/"

	maxGoroutines = 1000000
	dbPingTimeout = time.Second
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Health healthcheck.Handler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	if err := s.initHealth(db); err != nil {
		return nil, fmt.Errorf("s.initHealth -> %w", err)
	}

	s.MountMiddlewares()

	cakeHandler := s.initCakeHandler(db)
	s.MountHandlers(cakeHandler)

	return s, nil
}

func (s *Server) initCakeHandler(db *gorm.DB) *v1.CakeHandler {
	cakeDAO := dao.NewCakeDAO(db)
	repo := repository.NewCakeRepository(cakeDAO)
	svc := service.NewCakeService(repo)
	handler := v1.NewCakeHandler(svc)

	return handler
}

func (s *Server) initHealth(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	s.Health = healthcheck.NewHandler()
	s.Health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(maxGoroutines))
	s.Health.AddReadinessCheck("database", healthcheck.DatabasePingCheck(sqlDB, dbPingTimeout))

	return nil
}

func (s *Server) MountMiddlewares() {
	// Access log and panic recovery through the global zap logger.
	s.Router.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	s.Router.Use(ginzap.CustomRecoveryWithZap(zap.L(), true, renderPanic))
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", "/swagger"})))
	s.Router.Use(middleware.Metrics())
}

func renderPanic(ctx *gin.Context, _ any) {
	err := errors.New(http.StatusText(http.StatusInternalServerError))
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}

func (s *Server) MountHandlers(cakeHandler *v1.CakeHandler) {
	cakes := s.Router.Group("/cake")
	{
		cakes.POST("", cakeHandler.HandleCreateCake)
		cakes.GET("", cakeHandler.HandleGetCakes)
		// Static segment, matched before :id.
		cakes.GET("/search", cakeHandler.HandleSearchCakes)
		cakes.GET("/:id", cakeHandler.HandleGetCake)
		cakes.PATCH("/:id", cakeHandler.HandleUpdateCake)
		cakes.DELETE("/:id", cakeHandler.HandleDeleteCake)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/live", gin.WrapF(s.Health.LiveEndpoint))
	s.Router.GET("/ready", gin.WrapF(s.Health.ReadyEndpoint))
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Cake API"
	docs.SwaggerInfo.Description = "CRUD API for cakes."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
