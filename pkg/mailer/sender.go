package mailer

import "context"

// Transport delivers a fully-built Message.
// Implementations live in subpackages (smtp, resend, memory).
type Transport interface {
	// Send delivers the message. The returned error is passed to the
	// caller of the terminal operation unchanged.
	Send(ctx context.Context, msg *Message) error
}

// TemplateEngine renders a template file into markup.
type TemplateEngine interface {
	// Render returns the rendered markup.
	// Must fail if req.TemplateFile does not exist.
	Render(ctx context.Context, req RenderRequest) (string, error)
}

// PathResolver maps a module identifier to its base directory.
type PathResolver interface {
	// Resolve returns the base path for moduleID.
	// Must fail if the module is unknown.
	Resolve(moduleID string) (string, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, msg *Message) error

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, msg *Message) error {
	return f(ctx, msg)
}

// TemplateEngineFunc adapts a function to the TemplateEngine interface.
type TemplateEngineFunc func(ctx context.Context, req RenderRequest) (string, error)

// Render implements TemplateEngine.
func (f TemplateEngineFunc) Render(ctx context.Context, req RenderRequest) (string, error) {
	return f(ctx, req)
}

// PathResolverFunc adapts a function to the PathResolver interface.
type PathResolverFunc func(moduleID string) (string, error)

// Resolve implements PathResolver.
func (f PathResolverFunc) Resolve(moduleID string) (string, error) {
	return f(moduleID)
}
