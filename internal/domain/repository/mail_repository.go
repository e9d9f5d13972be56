package repository

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

// MailRepository sends plain text email.
type MailRepository interface {
	SendMail(ctx context.Context, to string, subject string, body string) error
}

// EmailTemplates renders the two staff notifications.
type EmailTemplates interface {
	NewRequestAlert(req *entity.ServiceRequest, invoiceURL string) (subject, body string)
	CustomerReplyAlert(req *entity.ServiceRequest, resp *entity.CustomerResponse, options []entity.ServiceOption) (subject, body string)
}
