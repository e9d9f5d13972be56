package repository

import (
	"context"
	"fmt"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"github.com/winning-appliances/service-automation/pkg/messaging"
	"go.uber.org/zap"
)

type redisEventPublisher struct {
	client  messaging.RedisClient
	channel string
	logger  *zap.Logger
}

// NewRedisEventPublisher publishes lifecycle events as JSON on channel.
func NewRedisEventPublisher(client messaging.RedisClient, channel string, logger *zap.Logger) domainRepo.EventPublisher {
	return &redisEventPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, event entity.LifecycleEvent) error {
	if err := p.client.Publish(ctx, p.channel, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	p.logger.Debug("Published lifecycle event",
		zap.String("type", string(event.Type)),
		zap.String("si_number", event.SINumber),
		zap.String("channel", p.channel))
	return nil
}

type noopEventPublisher struct{}

// NewNoopEventPublisher discards events; used when redis is disabled.
func NewNoopEventPublisher() domainRepo.EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, entity.LifecycleEvent) error {
	return nil
}
