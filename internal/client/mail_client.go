package client

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"idea-copilot-api/internal/config"
	"idea-copilot-api/internal/metrics"
)

// MailClient sends notification emails. Sending is fire-and-forget: delivery
// failures are logged and counted but never surface to the caller.
type MailClient interface {
	Enabled() bool
	SendAsync(to []string, subject, htmlBody string)
}

// mailClient implements MailClient over plain SMTP
type mailClient struct {
	cfg     config.SMTPConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewMailClient creates a new SMTP mail client. When the SMTP config is
// incomplete the client stays disabled and SendAsync becomes a no-op.
func NewMailClient(cfg config.SMTPConfig, logger *zap.Logger, m *metrics.Metrics) MailClient {
	if !cfg.Enabled() {
		logger.Warn("mail client disabled: missing SMTP configuration")
	}
	return &mailClient{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
	}
}

// Enabled reports whether outgoing mail is configured
func (c *mailClient) Enabled() bool {
	return c.cfg.Enabled()
}

// SendAsync delivers an HTML email on a background goroutine
func (c *mailClient) SendAsync(to []string, subject, htmlBody string) {
	if !c.cfg.Enabled() {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
		addr := fmt.Sprintf("%s:%s", c.cfg.Host, c.cfg.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Idea Copilot <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), c.cfg.From, subject, mime, htmlBody))

		err := smtp.SendMail(addr, auth, c.cfg.From, to, msg)
		if err != nil {
			c.logger.Error("failed to send email",
				zap.Strings("to", to),
				zap.String("subject", subject),
				zap.Error(err))
			if c.metrics != nil {
				c.metrics.IncrementNotificationDelivery("email", "error")
			}
			return
		}

		c.logger.Info("email sent",
			zap.Strings("to", to),
			zap.String("subject", subject))
		if c.metrics != nil {
			c.metrics.IncrementNotificationDelivery("email", "success")
		}
	}()
}
