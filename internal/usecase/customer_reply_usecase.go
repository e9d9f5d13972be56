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

const MessageMissingCustomerEmail = "Customer email is required"

// CustomerReplyInput carries either structured reply fields, pasted email
// text, or both. Explicit fields take precedence over parsed ones.
type CustomerReplyInput struct {
	CustomerEmail      string
	SerialNumber       string
	ProblemDescription string
	WarrantyStatus     string
	EmailText          string
}

type CustomerReplyResult struct {
	Request  *entity.ServiceRequest
	Response *entity.CustomerResponse
	Options  []entity.ServiceOption
}

type CustomerReplyUsecase struct {
	requestRepo repository.ServiceRequestRepository
	matcher     *OptionMatcher
	mailRepo    repository.MailRepository
	templates   repository.EmailTemplates
	publisher   repository.EventPublisher
	logger      *zap.Logger
}

func NewCustomerReplyUsecase(
	requestRepo repository.ServiceRequestRepository,
	matcher *OptionMatcher,
	mailRepo repository.MailRepository,
	templates repository.EmailTemplates,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *CustomerReplyUsecase {
	return &CustomerReplyUsecase{
		requestRepo: requestRepo,
		matcher:     matcher,
		mailRepo:    mailRepo,
		templates:   templates,
		publisher:   publisher,
		logger:      logger,
	}
}

// ResolveReply merges parsed email text into the explicit fields.
func ResolveReply(in CustomerReplyInput) CustomerReplyInput {
	if in.EmailText == "" {
		return in
	}

	parsed := extract.Reply(in.EmailText)
	if in.CustomerEmail == "" {
		in.CustomerEmail = parsed.CustomerEmail
	}
	if in.SerialNumber == "" {
		in.SerialNumber = parsed.SerialNumber
	}
	if in.ProblemDescription == "" {
		in.ProblemDescription = parsed.ProblemDescription
	}
	if in.WarrantyStatus == "" {
		in.WarrantyStatus = parsed.WarrantyStatus
	}
	return in
}

// ProcessReply records a customer reply against their most recent pending
// request, emails the matching service options to staff and marks the
// request as options_sent. Option lookup failures are not errors.
func (u *CustomerReplyUsecase) ProcessReply(ctx context.Context, in CustomerReplyInput) (*CustomerReplyResult, error) {
	in = ResolveReply(in)
	if in.CustomerEmail == "" {
		return nil, domainErrors.NewMissingFieldsError(MessageMissingCustomerEmail, "customerEmail")
	}

	req, err := u.requestRepo.FindPendingByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return nil, domainErrors.NewPersistenceError("failed to find pending service request", err)
	}
	if req == nil {
		u.logger.Info("No pending service request for reply", zap.String("customer_email", in.CustomerEmail))
		return nil, domainErrors.NewPendingRequestNotFoundError(in.CustomerEmail)
	}

	resp := &entity.CustomerResponse{
		ServiceRequestID:   req.ID,
		SerialNumber:       in.SerialNumber,
		ProblemDescription: in.ProblemDescription,
		WarrantyStatus:     in.WarrantyStatus,
	}
	if err := u.requestRepo.AppendResponse(ctx, resp); err != nil {
		return nil, domainErrors.NewPersistenceError("failed to save customer response", err)
	}

	options := u.matcher.Match(ctx, req.SKU, in.WarrantyStatus)

	subject, body := u.templates.CustomerReplyAlert(req, resp, options)
	if err := u.mailRepo.SendMail(ctx, req.AssignedUserEmail, subject, body); err != nil {
		pkgErrors.LogError(u.logger, err, "Failed to send service options email",
			zap.String("si_number", req.SINumber),
			zap.String("to", req.AssignedUserEmail))
	}

	if err := u.requestRepo.UpdateStatus(ctx, req.ID, entity.RequestStatusOptionsSent); err != nil {
		return nil, domainErrors.NewPersistenceError("failed to update service request status", err)
	}
	req.Status = entity.RequestStatusOptionsSent

	u.logger.Info("Customer reply processed",
		zap.String("si_number", req.SINumber),
		zap.String("customer_email", req.CustomerEmail),
		zap.Int("options_found", len(options)))

	publishEvent(ctx, u.publisher, u.logger, entity.LifecycleEvent{
		Type:          entity.EventCustomerReplyProcessed,
		SINumber:      req.SINumber,
		CustomerEmail: req.CustomerEmail,
		Status:        req.Status,
		OptionsFound:  len(options),
		At:            time.Now().UTC(),
	})

	return &CustomerReplyResult{Request: req, Response: resp, Options: options}, nil
}
