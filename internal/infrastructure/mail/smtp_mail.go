package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig holds SMTP settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPClient sends plain text email through gomail
type SMTPClient struct {
	from   string
	sender Sender
	logger *zap.Logger
}

// NewSMTPClient creates a client that dials cfg.Host for every message.
func NewSMTPClient(cfg SMTPConfig, logger *zap.Logger) *SMTPClient {
	return NewSMTPClientWithSender(cfg.From, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), logger)
}

func NewSMTPClientWithSender(from string, sender Sender, logger *zap.Logger) *SMTPClient {
	return &SMTPClient{
		from:   from,
		sender: sender,
		logger: logger,
	}
}

// SendMail sends a plain text email
func (c *SMTPClient) SendMail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := c.sender.DialAndSend(m); err != nil {
		c.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// LogSender records messages instead of sending them; used when SMTP is not
// configured.
type LogSender struct {
	Logger *zap.Logger
}

func (s LogSender) DialAndSend(msgs ...*gomail.Message) error {
	for _, m := range msgs {
		s.Logger.Warn("SMTP not configured, email not sent",
			zap.Strings("to", m.GetHeader("To")),
			zap.Strings("subject", m.GetHeader("Subject")),
		)
	}
	return nil
}
