// Package config loads sendmail configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/sendmail/pkg/extpath"
	"github.com/dmitrymomot/sendmail/pkg/logger"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/mailer/memory"
	"github.com/dmitrymomot/sendmail/pkg/mailer/resend"
	"github.com/dmitrymomot/sendmail/pkg/mailer/smtp"
)

// Transport names accepted by SENDMAIL_TRANSPORT.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
	TransportMemory = "memory"
)

// ErrUnknownTransport is returned for an unsupported SENDMAIL_TRANSPORT value.
var ErrUnknownTransport = errors.New("config: unknown transport")

// Config is the complete sendmail configuration.
type Config struct {
	Logger logger.Config
	Mailer mailer.Config
	SMTP   smtp.Config
	Resend resend.Config
	Server Server

	// ExtensionRoot holds one directory per module, named after the
	// module with its "tx_" prefix removed.
	ExtensionRoot string `env:"SENDMAIL_EXTENSION_ROOT" envDefault:"."`
	Transport     string `env:"SENDMAIL_TRANSPORT" envDefault:"smtp"`
	ButtonClass   string `env:"SENDMAIL_BUTTON_CLASS"`
}

// Server configures the preview server.
type Server struct {
	Address         string        `env:"SENDMAIL_SERVER_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SENDMAIL_SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Paths returns the resolver for modules below ExtensionRoot.
// The root is made absolute so resolved paths can be read through os.DirFS("/").
func (c Config) Paths() (extpath.Dir, error) {
	root, err := filepath.Abs(c.ExtensionRoot)
	if err != nil {
		return "", fmt.Errorf("config: extension root: %w", err)
	}
	return extpath.Dir(root), nil
}

// NewTransport creates the configured transport.
func (c Config) NewTransport(l *slog.Logger) (mailer.Transport, error) {
	switch c.Transport {
	case TransportSMTP, "":
		return smtp.New(c.SMTP, smtp.WithLogger(l)), nil
	case TransportResend:
		return resend.New(c.Resend, resend.WithLogger(l)), nil
	case TransportMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
}
