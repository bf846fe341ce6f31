package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/sendmail/pkg/logger"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/sanitizer"
)

// dialer is the part of *gomail.Dialer the transport uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Transport implements mailer.Transport over SMTP.
type Transport struct {
	dialer dialer
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

// New creates an SMTP transport. A connection is opened per message.
func New(cfg Config, opts ...Option) *Transport {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit opt-in for internal relays
	}

	t := &Transport{
		dialer: d,
		config: cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send implements mailer.Transport.
func (t *Transport) Send(ctx context.Context, msg *mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := t.buildMessage(msg)

	if err := t.dialer.DialAndSend(m); err != nil {
		t.logger.WarnContext(ctx, "smtp delivery failed",
			slog.String("host", t.config.Host),
			slog.Int("port", t.config.Port),
			slog.String("error", err.Error()),
		)
		return errors.Join(ErrSendFailed, err)
	}

	t.logger.InfoContext(ctx, "mail delivered",
		slog.String("host", t.config.Host),
		slog.String("message_id", m.GetHeader("Message-ID")[0]),
		slog.Int("recipients", len(msg.To)+len(msg.Cc)+len(msg.Bcc)),
	)
	return nil
}

func (t *Transport) buildMessage(msg *mailer.Message) *gomail.Message {
	m := gomail.NewMessage()

	setAddresses(m, "From", msg.From)
	setAddresses(m, "To", msg.To)
	setAddresses(m, "Cc", msg.Cc)
	setAddresses(m, "Bcc", msg.Bcc)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", t.messageID())

	contentType := msg.ContentType
	if contentType == "" {
		contentType = mailer.ContentTypePlain
	}

	if msg.IsHTML() && !t.config.DisableTextAlternative {
		// clients render the last alternative they support, so HTML goes last
		m.SetBody(mailer.ContentTypePlain, sanitizer.PlainText(msg.Body))
		m.AddAlternative(mailer.ContentTypeHTML, msg.Body)
		return m
	}

	m.SetBody(contentType, msg.Body)
	return m
}

func setAddresses(m *gomail.Message, header string, addrs []mailer.Address) {
	if len(addrs) == 0 {
		return
	}
	values := make([]string, len(addrs))
	for i, a := range addrs {
		values[i] = m.FormatAddress(a.Email, a.Name)
	}
	m.SetHeader(header, values...)
}

func (t *Transport) messageID() string {
	domain := t.config.MessageIDDomain
	if domain == "" {
		domain = t.config.Host
	}
	if domain == "" {
		domain = "localhost"
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
