package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"go.uber.org/zap"
)

type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	return m.Called(ctx, channel, message).Error(0)
}

func (m *MockRedisClient) Close() error {
	return m.Called().Error(0)
}

func TestRedisEventPublisher_Publish(t *testing.T) {
	client := new(MockRedisClient)
	event := entity.LifecycleEvent{
		Type:     entity.EventServiceRequestCreated,
		SINumber: "SI12345678",
		Status:   entity.RequestStatusWaitingCustomer,
		At:       time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	client.On("Publish", mock.Anything, "service-automation.events", event).Return(nil).Once()

	publisher := NewRedisEventPublisher(client, "service-automation.events", zap.NewNop())

	assert.NoError(t, publisher.Publish(context.Background(), event))
	client.AssertExpectations(t)
}

func TestRedisEventPublisher_PublishError(t *testing.T) {
	client := new(MockRedisClient)
	client.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	err := NewRedisEventPublisher(client, "events", zap.NewNop()).
		Publish(context.Background(), entity.LifecycleEvent{Type: entity.EventCustomerReplyProcessed})

	assert.ErrorContains(t, err, "customer_reply.processed")
}

func TestNoopEventPublisher(t *testing.T) {
	assert.NoError(t, NewNoopEventPublisher().Publish(context.Background(), entity.LifecycleEvent{}))
}
