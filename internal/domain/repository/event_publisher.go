package repository

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

type EventPublisher interface {
	Publish(ctx context.Context, event entity.LifecycleEvent) error
}
