// Package mail implements outbound transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"mdesk/config"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/service"
	"mdesk/internal/errors"
)

// smtpMailer sends transactional mail through a configured SMTP relay using go-mail.
type smtpMailer struct {
	client      *gomail.Client
	from        string
	fromName    string
	serviceName string
	logger      *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	}
	if cfg.SMTP.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client:      client,
		from:        cfg.SMTP.From,
		fromName:    cfg.SMTP.FromName,
		serviceName: cfg.Env.ServiceName,
		logger:      logger,
	}, nil
}

// SendTempPassword delivers a freshly issued temporary password. The message
// carries both HTML and plain-text bodies.
func (m *smtpMailer) SendTempPassword(ctx context.Context, to, name, tempPassword string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return errors.Wrap(err, "set mail sender")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "set mail recipient")
	}

	msg.Subject(fmt.Sprintf("[%s] Temporary password issued", m.serviceName))
	msg.SetBodyString(gomail.TypeTextPlain, tempPasswordTextBody(name, tempPassword))
	msg.AddAlternativeString(gomail.TypeTextHTML, tempPasswordHTMLBody(name, tempPassword))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		if m.logger != nil {
			m.logger.ErrorContext(ctx, "temp password mail delivery failed",
				slog.String("to", to),
				slog.String("error", err.Error()),
			)
		}

		return domainerrors.ErrMailDeliveryFailed.WrapMessage("send temp password mail")
	}

	return nil
}

func tempPasswordTextBody(name, tempPassword string) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"A temporary password has been issued for your account:\n\n"+
			"    %s\n\n"+
			"For your security, please sign in and change your password immediately.\n\n"+
			"This mailbox is not monitored.\n",
		name, tempPassword,
	)
}

func tempPasswordHTMLBody(name, tempPassword string) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
      <h2 style="text-align: center;">Temporary password issued</h2>
      <p>Hello %s,</p>
      <p>A temporary password has been issued for your account:</p>
      <div style="background-color: #f4f4f4; padding: 15px; border-radius: 5px; margin: 20px 0;">
        <p style="font-size: 20px; font-weight: bold; letter-spacing: 2px; margin: 0;">%s</p>
      </div>
      <p>For your security, please sign in and change your password immediately.</p>
      <p style="color: #999; font-size: 12px; margin-top: 30px;">This mailbox is not monitored.</p>
    </div>
  </body>
</html>`, name, tempPassword)
}
