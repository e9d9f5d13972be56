package main

import (
	"context"
	"net/http"

	adapterRepo "github.com/winning-appliances/service-automation/internal/adapter/repository"
	"github.com/winning-appliances/service-automation/internal/config"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"github.com/winning-appliances/service-automation/internal/infrastructure/mail"
	"github.com/winning-appliances/service-automation/pkg/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func newOptionSource(ctx context.Context, cfg config.ServiceOptionsConfig, logger *zap.Logger) (domainRepo.ServiceOptionSource, error) {
	switch cfg.Source {
	case config.OptionSourceCSV:
		csvURL := cfg.CSVURL
		if csvURL == "" {
			csvURL = adapterRepo.PublishedCSVURL(cfg.SheetID, cfg.SheetName)
		}
		logger.Info("Service options from published CSV", zap.String("url", csvURL))
		return adapterRepo.NewCSVOptionSource(http.DefaultClient, csvURL, logger), nil

	case config.OptionSourceSheetsAPI:
		var opts []option.ClientOption
		if cfg.Endpoint != "" {
			opts = append(opts, option.WithEndpoint(cfg.Endpoint))
		}
		logger.Info("Service options from Sheets API",
			zap.String("sheet_id", cfg.SheetID),
			zap.String("sheet_name", cfg.SheetName))
		return adapterRepo.NewSheetsOptionSource(ctx, cfg.APIKey, cfg.SheetID, cfg.SheetName, logger, opts...)

	default:
		logger.Warn("No service option source configured, replies will list no options",
			zap.String("source", cfg.Source))
		return adapterRepo.NewUnconfiguredOptionSource(), nil
	}
}

// newEventPublisher connects to redis when enabled. An unreachable server
// downgrades to the no-op publisher.
func newEventPublisher(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (domainRepo.EventPublisher, func()) {
	if !cfg.Enabled {
		return adapterRepo.NewNoopEventPublisher(), func() {}
	}

	client, err := messaging.NewRedisClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		logger.Warn("Redis unavailable, lifecycle events disabled", zap.Error(err))
		return adapterRepo.NewNoopEventPublisher(), func() {}
	}

	logger.Info("Publishing lifecycle events",
		zap.String("addr", cfg.Addr),
		zap.String("channel", cfg.Channel))

	return adapterRepo.NewRedisEventPublisher(client, cfg.Channel, logger), func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close redis client", zap.Error(err))
		}
	}
}

func newSMTPClient(cfg config.EmailConfig, logger *zap.Logger) *mail.SMTPClient {
	if !cfg.Enabled() {
		logger.Warn("SMTP host not configured, notifications will only be logged")
		return mail.NewSMTPClientWithSender(cfg.From, mail.LogSender{Logger: logger}, logger)
	}

	return mail.NewSMTPClient(mail.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	}, logger)
}
