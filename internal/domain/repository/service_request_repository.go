package repository

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

type ServiceRequestRepository interface {
	// Upsert inserts req or, when its SI number already exists, overwrites the
	// customer and order fields. ID, SI number and status of an existing row
	// are never changed. req is updated with the stored ID and status.
	Upsert(ctx context.Context, req *entity.ServiceRequest) (created bool, err error)
	// GetBySINumber returns nil when no request carries siNumber.
	GetBySINumber(ctx context.Context, siNumber string) (*entity.ServiceRequest, error)
	// FindPendingByEmail returns the most recently created request still
	// waiting on the customer, or nil.
	FindPendingByEmail(ctx context.Context, email string) (*entity.ServiceRequest, error)
	AppendResponse(ctx context.Context, resp *entity.CustomerResponse) error
	UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) error
}
