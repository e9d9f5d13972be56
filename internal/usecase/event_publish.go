package usecase

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
)

// publishEvent emits a lifecycle event. A publish failure is logged and
// never fails the calling flow.
func publishEvent(ctx context.Context, publisher repository.EventPublisher, logger *zap.Logger, event entity.LifecycleEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish lifecycle event",
			zap.String("type", string(event.Type)),
			zap.String("si_number", event.SINumber),
			zap.Error(err))
	}
}
