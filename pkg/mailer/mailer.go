package mailer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sendmail/pkg/logger"
)

// Mailer holds the collaborators shared by all requests and creates them.
type Mailer struct {
	paths     PathResolver
	transport Transport
	engine    TemplateEngine
	logger    *slog.Logger
	config    Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for dispatch and preview events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Mailer.
// transport and engine may be nil; operations needing them then fail
// with a ConfigurationError.
func New(paths PathResolver, transport Transport, engine TemplateEngine, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		paths:     paths,
		transport: transport,
		engine:    engine,
		config:    cfg,
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewRequest creates a request for the given module identifier.
// The identifier may carry a "tx_" prefix, which is stripped before the
// module's base path is resolved.
func (m *Mailer) NewRequest(moduleID string) (*Request, error) {
	if moduleID == "" {
		return nil, newConfigurationError(ErrNoModuleID)
	}
	if m.paths == nil {
		return nil, newConfigurationError(ErrNoPathResolver)
	}

	extName := ExtensionName(moduleID)
	basePath, err := m.paths.Resolve(strings.ToLower(extName))
	if err != nil {
		return nil, err
	}

	return &Request{
		mailer:      m,
		moduleID:    moduleID,
		extName:     extName,
		modulePath:  basePath,
		defaultView: DefaultViewConfig(moduleID, extName, basePath, m.config.templateRelPath()),
	}, nil
}

// NewRequest is a shorthand for New(paths, transport, engine, Config{}).NewRequest(moduleID).
func NewRequest(moduleID string, paths PathResolver, transport Transport, engine TemplateEngine) (*Request, error) {
	return New(paths, transport, engine, Config{}).NewRequest(moduleID)
}

// ExtensionName strips the "tx_" namespace prefix from a module identifier.
func ExtensionName(moduleID string) string {
	return strings.TrimPrefix(moduleID, "tx_")
}

func (m *Mailer) dispatch(ctx context.Context, msg *Message) error {
	if m.transport == nil {
		return newConfigurationError(ErrNoTransport)
	}

	m.logger.DebugContext(ctx, "dispatching mail",
		slog.String("content_type", msg.ContentType),
		slog.Int("to", len(msg.To)),
		slog.Int("cc", len(msg.Cc)),
		slog.Int("bcc", len(msg.Bcc)),
	)

	if err := m.transport.Send(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "mail transport failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (m *Mailer) render(ctx context.Context, req RenderRequest) (string, error) {
	if m.engine == nil {
		return "", newConfigurationError(ErrNoEngine)
	}

	m.logger.DebugContext(ctx, "rendering mail template",
		slog.String("template", req.TemplateFile),
		slog.Int("variables", len(req.Variables)),
	)

	return m.engine.Render(ctx, req)
}
