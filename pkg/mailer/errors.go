package mailer

import (
	"errors"
	"fmt"
)

// Error codes carried by ConfigurationError and IncompleteRequestError.
// They are stable and may be matched by callers.
const (
	CodeConfiguration     = 1480717855
	CodeIncompleteRequest = 1480717955
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("mailer configuration error")

	// ErrIncompleteRequest matches every *IncompleteRequestError via errors.Is.
	ErrIncompleteRequest = errors.New("incomplete mail request")

	// ErrNoModuleID indicates the request was created without a module identifier.
	ErrNoModuleID = errors.New("no extension key given")

	// ErrNoPathResolver indicates the mailer has no path resolver.
	ErrNoPathResolver = errors.New("no path resolver configured")

	// ErrNoTransport indicates a send was attempted without a transport.
	ErrNoTransport = errors.New("no transport configured")

	// ErrNoEngine indicates an HTML render was attempted without a template engine.
	ErrNoEngine = errors.New("no template engine configured")

	// ErrContentKind indicates the content does not fit the terminal operation,
	// e.g. template variables passed to SendPlainText.
	ErrContentKind = errors.New("content kind does not match operation")
)

// ConfigurationError is returned when the mailer or a request is wired incorrectly.
type ConfigurationError struct {
	Err  error
	Code int
}

func newConfigurationError(err error) *ConfigurationError {
	return &ConfigurationError{Err: err, Code: CodeConfiguration}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mailer: %v (code %d)", e.Err, e.Code)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Request fields checked before any terminal operation, in check order.
const (
	FieldFrom    = "from"
	FieldTo      = "to"
	FieldSubject = "subject"
	FieldContent = "content"
)

var fieldMessages = map[string]string{
	FieldFrom:    "no sender given",
	FieldTo:      "no recipient given",
	FieldSubject: "no subject given",
	FieldContent: "no content given",
}

// IncompleteRequestError names the first required field found empty.
type IncompleteRequestError struct {
	Field string
	Code  int
}

func (e *IncompleteRequestError) Error() string {
	msg, ok := fieldMessages[e.Field]
	if !ok {
		msg = "no " + e.Field + " given"
	}
	return fmt.Sprintf("mailer: %s (code %d)", msg, e.Code)
}

func (e *IncompleteRequestError) Is(target error) bool { return target == ErrIncompleteRequest }
