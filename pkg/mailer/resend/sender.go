package resend

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/sendmail/pkg/logger"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

// emailSender is the part of the Resend client the transport uses.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Transport implements mailer.Transport using the Resend API.
type Transport struct {
	emails emailSender
	logger *slog.Logger
	config Config
}

var _ mailer.Transport = (*Transport)(nil)

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the transport logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a Resend transport.
func New(cfg Config, opts ...Option) *Transport {
	t := &Transport{
		emails: resend.NewClient(cfg.APIKey).Emails,
		config: cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send implements mailer.Transport.
// Resend accepts a single sender; the first From address is used.
func (t *Transport) Send(ctx context.Context, msg *mailer.Message) error {
	resp, err := t.emails.SendWithContext(ctx, t.buildRequest(msg))
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	t.logger.InfoContext(ctx, "mail accepted by resend", slog.String("id", resp.Id))
	return nil
}

func (t *Transport) buildRequest(msg *mailer.Message) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		To:      mailer.Addresses(msg.To),
		Cc:      mailer.Addresses(msg.Cc),
		Bcc:     mailer.Addresses(msg.Bcc),
		Subject: msg.Subject,
	}
	if len(msg.From) > 0 {
		req.From = msg.From[0].String()
	}

	if msg.IsHTML() {
		req.Html = msg.Body
	} else {
		req.Text = msg.Body
	}

	if len(t.config.Tags) > 0 {
		req.Tags = convertTags(t.config.Tags)
	}
	return req
}

// convertTags sorts by name so requests are deterministic.
func convertTags(tags map[string]string) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		if value == "" {
			value = "true"
		}
		result = append(result, resend.Tag{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
