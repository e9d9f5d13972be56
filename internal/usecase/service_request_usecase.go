package usecase

import (
	"context"
	"time"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
	domainErrors "github.com/winning-appliances/service-automation/internal/domain/errors"
	"github.com/winning-appliances/service-automation/internal/domain/extract"
	"github.com/winning-appliances/service-automation/internal/domain/repository"
	pkgErrors "github.com/winning-appliances/service-automation/pkg/errors"
	"go.uber.org/zap"
)

const MessageMissingCustomerData = "Could not extract required customer data"

type CreateServiceRequestInput struct {
	PageText          string
	URL               string
	SKU               string
	AssignedUserEmail string
}

type CreateServiceRequestResult struct {
	Request   *entity.ServiceRequest
	Extracted extract.OrderPageFields
	Created   bool
}

type ServiceRequestUsecase struct {
	requestRepo repository.ServiceRequestRepository
	mailRepo    repository.MailRepository
	templates   repository.EmailTemplates
	publisher   repository.EventPublisher
	logger      *zap.Logger
}

func NewServiceRequestUsecase(
	requestRepo repository.ServiceRequestRepository,
	mailRepo repository.MailRepository,
	templates repository.EmailTemplates,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *ServiceRequestUsecase {
	return &ServiceRequestUsecase{
		requestRepo: requestRepo,
		mailRepo:    mailRepo,
		templates:   templates,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateServiceRequest extracts customer details from an order page, stores
// the request and alerts the assigned staff member. When the order number or
// email cannot be extracted the result still carries the extracted fields
// alongside the validation error.
func (u *ServiceRequestUsecase) CreateServiceRequest(ctx context.Context, in CreateServiceRequestInput) (*CreateServiceRequestResult, error) {
	fields := extract.OrderPage(in.PageText)
	result := &CreateServiceRequestResult{Extracted: fields}

	if missing := fields.Missing(); len(missing) > 0 {
		u.logger.Warn("Order page is missing required fields",
			zap.Strings("missing", missing),
			zap.String("sku", in.SKU))
		return result, domainErrors.NewMissingFieldsError(MessageMissingCustomerData, missing...)
	}

	req := &entity.ServiceRequest{
		SINumber:          fields.SINumber,
		CustomerName:      fields.Name,
		CustomerEmail:     fields.Email,
		CustomerPhone:     fields.Phone,
		CustomerAddress:   fields.Address,
		SKU:               in.SKU,
		ShipmentDate:      fields.ShipmentDate,
		AssignedUserEmail: in.AssignedUserEmail,
		Status:            entity.RequestStatusWaitingCustomer,
	}

	created, err := u.requestRepo.Upsert(ctx, req)
	if err != nil {
		return nil, domainErrors.NewPersistenceError("failed to save service request", err)
	}
	result.Request = req
	result.Created = created

	u.logger.Info("Service request saved",
		zap.String("si_number", req.SINumber),
		zap.String("customer_email", req.CustomerEmail),
		zap.String("sku", req.SKU),
		zap.Bool("created", created))

	subject, body := u.templates.NewRequestAlert(req, in.URL)
	if err := u.mailRepo.SendMail(ctx, in.AssignedUserEmail, subject, body); err != nil {
		pkgErrors.LogError(u.logger, err, "Failed to send staff notification",
			zap.String("si_number", req.SINumber),
			zap.String("to", in.AssignedUserEmail))
	}

	publishEvent(ctx, u.publisher, u.logger, entity.LifecycleEvent{
		Type:          entity.EventServiceRequestCreated,
		SINumber:      req.SINumber,
		CustomerEmail: req.CustomerEmail,
		Status:        req.Status,
		At:            time.Now().UTC(),
	})

	return result, nil
}
