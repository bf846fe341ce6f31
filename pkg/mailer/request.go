package mailer

import (
	"context"

	"github.com/dmitrymomot/sendmail/pkg/logger"
)

// Request accumulates the fields of one outgoing mail.
// Setters store values verbatim and return the request for chaining.
// A Request is not safe for concurrent use and is meant to be consumed
// by a single terminal operation: SendPlainText, SendHTML or PreviewHTML.
type Request struct {
	mailer      *Mailer
	content     Content
	moduleID    string
	extName     string
	modulePath  string
	subject     string
	from        []Address
	to          []Address
	cc          []Address
	bcc         []Address
	defaultView ViewConfig
	view        ViewConfig
}

func (r *Request) SetFrom(addrs ...Address) *Request {
	r.from = addrs
	return r
}

func (r *Request) SetTo(addrs ...Address) *Request {
	r.to = addrs
	return r
}

func (r *Request) SetCc(addrs ...Address) *Request {
	r.cc = addrs
	return r
}

func (r *Request) SetBcc(addrs ...Address) *Request {
	r.bcc = addrs
	return r
}

func (r *Request) SetSubject(subject string) *Request {
	r.subject = subject
	return r
}

// SetContent sets the body source. Use PlainText for SendPlainText and
// Variables for SendHTML / PreviewHTML.
func (r *Request) SetContent(c Content) *Request {
	r.content = c
	return r
}

// SetText is a shorthand for SetContent(PlainText(text)).
func (r *Request) SetText(text string) *Request {
	return r.SetContent(PlainText(text))
}

// SetVariables is a shorthand for SetContent(Variables(vars)).
func (r *Request) SetVariables(vars map[string]any) *Request {
	return r.SetContent(Variables(vars))
}

// SetViewConfig sets view overrides merged over the module defaults at render time.
func (r *Request) SetViewConfig(cfg ViewConfig) *Request {
	r.view = cfg
	return r
}

func (r *Request) ModuleID() string              { return r.moduleID }
func (r *Request) ExtName() string               { return r.extName }
func (r *Request) ModulePath() string            { return r.modulePath }
func (r *Request) From() []Address               { return r.from }
func (r *Request) To() []Address                 { return r.to }
func (r *Request) Cc() []Address                 { return r.cc }
func (r *Request) Bcc() []Address                { return r.bcc }
func (r *Request) Subject() string               { return r.subject }
func (r *Request) Content() Content              { return r.content }
func (r *Request) ViewConfig() ViewConfig        { return r.view }
func (r *Request) DefaultViewConfig() ViewConfig { return r.defaultView }

// ResolvedView returns the view the request would render with.
func (r *Request) ResolvedView() ResolvedView {
	return ResolveView(r.defaultView, r.view)
}

// SendPlainText sends the content verbatim as a text/plain mail.
// Content must be PlainText. Transport errors are returned unchanged.
func (r *Request) SendPlainText(ctx context.Context) error {
	if err := r.checkForMissingAttributes(); err != nil {
		return err
	}

	text, ok := r.content.(PlainText)
	if !ok {
		return newConfigurationError(ErrContentKind)
	}

	msg := &Message{
		From:        r.from,
		To:          r.to,
		Cc:          r.cc,
		Bcc:         r.bcc,
		Subject:     r.subject,
		Body:        string(text),
		ContentType: ContentTypePlain,
	}

	return r.mailer.dispatch(logger.WithModule(ctx, r.moduleID), msg)
}

// SendHTML renders the module template with the content as variables
// and sends the result as a text/html mail.
// Engine and transport errors are returned unchanged.
func (r *Request) SendHTML(ctx context.Context) error {
	if err := r.checkForMissingAttributes(); err != nil {
		return err
	}
	if r.mailer.transport == nil {
		return newConfigurationError(ErrNoTransport)
	}

	ctx = logger.WithModule(ctx, r.moduleID)

	body, err := r.renderHTML(ctx)
	if err != nil {
		return err
	}

	msg := &Message{
		From:        r.from,
		To:          r.to,
		Subject:     r.subject,
		Body:        body,
		ContentType: ContentTypeHTML,
	}
	if len(r.cc) > 0 {
		msg.Cc = r.cc
	}
	if len(r.bcc) > 0 {
		msg.Bcc = r.bcc
	}

	return r.mailer.dispatch(ctx, msg)
}

// PreviewHTML renders the HTML body SendHTML would send, without sending it.
func (r *Request) PreviewHTML(ctx context.Context) (string, error) {
	if err := r.checkForMissingAttributes(); err != nil {
		return "", err
	}
	return r.renderHTML(logger.WithModule(ctx, r.moduleID))
}

func (r *Request) renderHTML(ctx context.Context) (string, error) {
	return r.mailer.render(ctx, r.ResolvedView().RenderRequest(r.templateVariables()))
}

// templateVariables binds a PlainText content as the single variable "content".
func (r *Request) templateVariables() map[string]any {
	switch c := r.content.(type) {
	case Variables:
		vars := make(map[string]any, len(c))
		for k, v := range c {
			vars[k] = v
		}
		return vars
	case PlainText:
		return map[string]any{"content": string(c)}
	default:
		return map[string]any{}
	}
}

// checkForMissingAttributes checks from, to, subject and content in that
// order and reports the first empty one.
func (r *Request) checkForMissingAttributes() error {
	switch {
	case len(r.from) == 0:
		return &IncompleteRequestError{Field: FieldFrom, Code: CodeIncompleteRequest}
	case len(r.to) == 0:
		return &IncompleteRequestError{Field: FieldTo, Code: CodeIncompleteRequest}
	case r.subject == "":
		return &IncompleteRequestError{Field: FieldSubject, Code: CodeIncompleteRequest}
	case isEmptyContent(r.content):
		return &IncompleteRequestError{Field: FieldContent, Code: CodeIncompleteRequest}
	}
	return nil
}
