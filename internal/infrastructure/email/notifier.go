// Package email sends operator notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"titledesk/internal/shared/config"
	"titledesk/internal/shared/logger"
)

// Notifier announces report lifecycle events to the configured recipient.
type Notifier interface {
	NotifyReportReady(fileName string, batchIDs []uint) error
	NotifyReportFailed(reason string, batchIDs []uint) error
}

// SMTPNotifier sends notifications through gomail.
type SMTPNotifier struct {
	cfg       *config.EmailConfig
	recipient string
	dialer    *gomail.Dialer
}

// NewSMTPNotifier builds the notifier from email and report configuration.
func NewSMTPNotifier(cfg *config.EmailConfig, recipient string) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:       cfg,
		recipient: recipient,
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (n *SMTPNotifier) NotifyReportReady(fileName string, batchIDs []uint) error {
	subject := "County report ready for download"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>County Report Ready</h2>
			<p>The county report for %d batch(es) has finished rendering.</p>
			<p>File: %s</p>
		</body>
		</html>
	`, len(batchIDs), fileName)
	return n.send(subject, body)
}

func (n *SMTPNotifier) NotifyReportFailed(reason string, batchIDs []uint) error {
	subject := "County report generation failed"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>County Report Failed</h2>
			<p>Rendering the county report for %d batch(es) failed.</p>
			<p>Reason: %s</p>
		</body>
		</html>
	`, len(batchIDs), reason)
	return n.send(subject, body)
}

func (n *SMTPNotifier) send(subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", n.recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

// NopNotifier drops notifications; used when email is disabled.
type NopNotifier struct{}

func (NopNotifier) NotifyReportReady(string, []uint) error  { return nil }
func (NopNotifier) NotifyReportFailed(string, []uint) error { return nil }

// NewNotifier picks the SMTP or no-op notifier based on configuration.
func NewNotifier(cfg *config.EmailConfig, recipient string) Notifier {
	if cfg == nil || !cfg.Enabled || recipient == "" {
		logger.Debug("email notifications disabled")
		return NopNotifier{}
	}
	return NewSMTPNotifier(cfg, recipient)
}
