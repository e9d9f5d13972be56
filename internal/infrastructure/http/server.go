package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/winning-appliances/service-automation/internal/adapter/handler/http"
	"github.com/winning-appliances/service-automation/internal/config"
	"github.com/winning-appliances/service-automation/pkg/logger"
	"go.uber.org/zap"
)

// Usecases are the application operations exposed over HTTP.
type Usecases struct {
	ServiceRequests handlers.ServiceRequestCreator
	CustomerReplies handlers.CustomerReplyProcessor
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	usecases Usecases
}

func NewServer(cfg *config.Config, log *zap.Logger, usecases Usecases) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewRequestValidator()
	logger.WithEchoLogger(e, log)

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.HTTP.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(middleware.BodyLimit(cfg.Server.HTTP.BodyLimit))

	s := &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		usecases: usecases,
	}
	s.setupRoutes()
	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.config.Service.Name, s.config.Service.Version)
	serviceRequestHandler := handlers.NewServiceRequestHandler(s.usecases.ServiceRequests, s.logger)
	customerReplyHandler := handlers.NewCustomerReplyHandler(s.usecases.CustomerReplies, s.logger)

	s.echo.GET("/", healthHandler.Status)
	s.echo.GET("/health", healthHandler.Health)

	api := s.echo.Group("/api")
	api.POST("/service-request", serviceRequestHandler.Create)
	api.POST("/customer-reply", customerReplyHandler.Process)
}
