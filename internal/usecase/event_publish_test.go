package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishEvent_FailureIsLoggedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	publishEvent(context.Background(), publisher, zap.New(core), entity.LifecycleEvent{
		Type:     entity.EventCustomerReplyProcessed,
		SINumber: "SI12345678",
	})

	entries := logs.FilterMessage("Failed to publish lifecycle event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(entity.EventCustomerReplyProcessed), entries[0].ContextMap()["type"])
	assert.Equal(t, "SI12345678", entries[0].ContextMap()["si_number"])
	publisher.AssertExpectations(t)
}

func TestPublishEvent_Success(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e entity.LifecycleEvent) bool {
		return e.Type == entity.EventServiceRequestCreated
	})).Return(nil)

	publishEvent(context.Background(), publisher, zap.New(core), entity.LifecycleEvent{Type: entity.EventServiceRequestCreated})

	assert.Zero(t, logs.Len())
	publisher.AssertExpectations(t)
}
