package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterRepo "github.com/winning-appliances/service-automation/internal/adapter/repository"
	"github.com/winning-appliances/service-automation/internal/config"
	"github.com/winning-appliances/service-automation/internal/infrastructure/database"
	grpcServer "github.com/winning-appliances/service-automation/internal/infrastructure/grpc"
	httpServer "github.com/winning-appliances/service-automation/internal/infrastructure/http"
	"github.com/winning-appliances/service-automation/internal/infrastructure/mail"
	"github.com/winning-appliances/service-automation/internal/usecase"
	"github.com/winning-appliances/service-automation/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting service",
		zap.String("service", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment),
		zap.String("version", cfg.Service.Version))

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	optionSource, err := newOptionSource(ctx, cfg.ServiceOptions, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize service option source", zap.Error(err))
	}

	publisher, closePublisher := newEventPublisher(ctx, cfg.Redis, zapLogger)
	defer closePublisher()

	mailRepo := adapterRepo.NewStaffMailer(newSMTPClient(cfg.Email, zapLogger), zapLogger)
	templates := mail.NewEmailTemplateService(cfg.Email.CompanyName, cfg.Email.TeamName)

	usecases := httpServer.Usecases{
		ServiceRequests: usecase.NewServiceRequestUsecase(repos.ServiceRequest, mailRepo, templates, publisher, zapLogger),
		CustomerReplies: usecase.NewCustomerReplyUsecase(
			repos.ServiceRequest,
			usecase.NewOptionMatcher(optionSource, zapLogger),
			mailRepo, templates, publisher, zapLogger,
		),
	}

	// Initialize servers
	grpcSrv := grpcServer.NewServer(cfg, zapLogger)
	httpSrv := httpServer.NewServer(cfg, zapLogger, usecases)

	go func() {
		if err := grpcSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start gRPC server", zap.Error(err))
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down servers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer shutdownCancel()

	if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown gRPC server", zap.Error(err))
	}

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Servers shut down successfully")
}
