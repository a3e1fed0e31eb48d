package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/vndocs/authcore/internal/pkg/models"
)

// Client sends plain-text mail over SMTP.
type Client struct {
	cfg    models.MailConfig
	client *gomail.Client
}

// NewClient creates a mail client from configuration.
func NewClient(cfg models.MailConfig) (*Client, error) {
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("MAIL_FROM_ADDRESS is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}

	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
		)
	}
	if cfg.Password != "" {
		opts = append(opts, gomail.WithPassword(cfg.Password))
	}

	switch cfg.Encryption {
	case "ssl":
		opts = append(opts, gomail.WithSSL())
	case "none":
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.NoTLS))
	default:
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Client{cfg: cfg, client: client}, nil
}

// Send delivers a plain-text message to a single recipient.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(c.cfg.FromAddress); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := c.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
