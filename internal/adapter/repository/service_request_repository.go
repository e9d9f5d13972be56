package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"github.com/winning-appliances/service-automation/internal/domain/model"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns a repeated intake may overwrite. id, si_number, status and
// created_at are preserved.
var serviceRequestMutableColumns = []string{
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_address",
	"sku",
	"shipment_date",
	"assigned_user_email",
	"updated_at",
}

type serviceRequestRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ServiceRequestRepository {
	return &serviceRequestRepository{
		db:     db,
		logger: logger,
	}
}

// ServiceRequestConflictClause resolves a concurrent insert of the same SI
// number into an update of the mutable columns.
func ServiceRequestConflictClause() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "si_number"}},
		DoUpdates: clause.AssignmentColumns(serviceRequestMutableColumns),
	}
}

func (r *serviceRequestRepository) Upsert(ctx context.Context, req *entity.ServiceRequest) (bool, error) {
	incoming := model.ServiceRequestFromEntity(req)

	var existing model.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("si_number = ?", req.SINumber).
		First(&existing).Error

	switch {
	case err == nil:
		existing.CustomerName = incoming.CustomerName
		existing.CustomerEmail = incoming.CustomerEmail
		existing.CustomerPhone = incoming.CustomerPhone
		existing.CustomerAddress = incoming.CustomerAddress
		existing.SKU = incoming.SKU
		existing.ShipmentDate = incoming.ShipmentDate
		existing.AssignedUserEmail = incoming.AssignedUserEmail
		existing.UpdatedAt = time.Now()

		if err := r.db.WithContext(ctx).
			Model(&existing).
			Select(serviceRequestMutableColumns).
			Updates(&existing).Error; err != nil {
			r.logger.Error("Failed to update service request",
				zap.String("si_number", req.SINumber),
				zap.Error(err))
			return false, fmt.Errorf("failed to update service request: %w", err)
		}

		*req = *existing.ToEntity()
		return false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		incoming.ID = 0
		incoming.Status = string(entity.RequestStatusWaitingCustomer)
		if err := r.db.WithContext(ctx).
			Clauses(ServiceRequestConflictClause()).
			Create(incoming).Error; err != nil {
			r.logger.Error("Failed to create service request",
				zap.String("si_number", req.SINumber),
				zap.Error(err))
			return false, fmt.Errorf("failed to create service request: %w", err)
		}

		*req = *incoming.ToEntity()
		return true, nil

	default:
		r.logger.Error("Failed to look up service request",
			zap.String("si_number", req.SINumber),
			zap.Error(err))
		return false, fmt.Errorf("failed to get service request: %w", err)
	}
}

func (r *serviceRequestRepository) GetBySINumber(ctx context.Context, siNumber string) (*entity.ServiceRequest, error) {
	var row model.ServiceRequest

	err := r.db.WithContext(ctx).
		Where("si_number = ?", siNumber).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get service request",
			zap.String("si_number", siNumber),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	return row.ToEntity(), nil
}

// pendingByEmail selects the newest waiting request for email. Addresses
// compare case-insensitively; the stored spelling is kept for outbound mail.
func pendingByEmail(tx *gorm.DB, email string, dest *model.ServiceRequest) *gorm.DB {
	return tx.
		Where("LOWER(customer_email) = ? AND status = ?",
			strings.ToLower(strings.TrimSpace(email)),
			string(entity.RequestStatusWaitingCustomer)).
		Order("created_at DESC, id DESC").
		First(dest)
}

func (r *serviceRequestRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.ServiceRequest, error) {
	var row model.ServiceRequest

	if err := pendingByEmail(r.db.WithContext(ctx), email, &row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find pending service request",
			zap.String("customer_email", email),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find pending service request: %w", err)
	}

	return row.ToEntity(), nil
}

func (r *serviceRequestRepository) AppendResponse(ctx context.Context, resp *entity.CustomerResponse) error {
	row := model.CustomerResponseFromEntity(resp)
	if row.ReceivedAt.IsZero() {
		row.ReceivedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Failed to save customer response",
			zap.Int64("service_request_id", resp.ServiceRequestID),
			zap.Error(err))
		return fmt.Errorf("failed to save customer response: %w", err)
	}

	resp.ID = row.ID
	resp.ReceivedAt = row.ReceivedAt
	return nil
}

func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) error {
	err := r.db.WithContext(ctx).
		Model(&model.ServiceRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error

	if err != nil {
		r.logger.Error("Failed to update service request status",
			zap.Int64("id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return fmt.Errorf("failed to update service request status: %w", err)
	}

	return nil
}
