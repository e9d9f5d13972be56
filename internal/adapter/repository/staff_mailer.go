package repository

import (
	"context"
	"errors"
	"strings"

	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
)

// ErrNoRecipient is returned when a notification has no staff address.
var ErrNoRecipient = errors.New("notification recipient is empty")

// MessageSender delivers one plain text message. *mail.SMTPClient satisfies it.
type MessageSender interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// staffMailer sends service desk notifications to the assigned staff member.
type staffMailer struct {
	sender MessageSender
	logger *zap.Logger
}

func NewStaffMailer(sender MessageSender, logger *zap.Logger) domainRepo.MailRepository {
	return &staffMailer{
		sender: sender,
		logger: logger,
	}
}

func (m *staffMailer) SendMail(ctx context.Context, to, subject, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		m.logger.Warn("Notification dropped, no recipient", zap.String("subject", subject))
		return ErrNoRecipient
	}
	return m.sender.SendMail(ctx, to, subject, body)
}
