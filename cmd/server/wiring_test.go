package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapterRepo "github.com/winning-appliances/service-automation/internal/adapter/repository"
	"github.com/winning-appliances/service-automation/internal/config"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"go.uber.org/zap"
)

func TestNewOptionSource_Unconfigured(t *testing.T) {
	source, err := newOptionSource(context.Background(), config.ServiceOptionsConfig{}, zap.NewNop())
	require.NoError(t, err)

	_, err = source.FetchTable(context.Background())
	assert.ErrorIs(t, err, adapterRepo.ErrSourceNotConfigured)
}

func TestNewOptionSource_SheetsAPI(t *testing.T) {
	source, err := newOptionSource(context.Background(), config.ServiceOptionsConfig{
		Source:    config.OptionSourceSheetsAPI,
		SheetID:   config.DefaultSheetID,
		SheetName: config.DefaultSheetName,
		APIKey:    "key",
	}, zap.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, source)
}

func TestNewEventPublisher_Disabled(t *testing.T) {
	publisher, closeFn := newEventPublisher(context.Background(), config.RedisConfig{}, zap.NewNop())
	defer closeFn()

	assert.NoError(t, publisher.Publish(context.Background(), entity.LifecycleEvent{}))
}

func TestNewEventPublisher_UnreachableFallsBack(t *testing.T) {
	publisher, closeFn := newEventPublisher(context.Background(), config.RedisConfig{
		Enabled: true,
		Addr:    "127.0.0.1:1",
	}, zap.NewNop())
	defer closeFn()

	assert.NoError(t, publisher.Publish(context.Background(), entity.LifecycleEvent{}))
}

func TestNewSMTPClient_LogsWhenUnconfigured(t *testing.T) {
	client := newSMTPClient(config.EmailConfig{From: "service@winning.com.au"}, zap.NewNop())

	assert.NoError(t, client.SendMail(context.Background(), "staff@winning.com.au", "subject", "body"))
}
