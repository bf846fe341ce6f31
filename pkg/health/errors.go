package health

import "errors"

var (
	// ErrCheckFailed is returned by Report.Err when one or more checks failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrTemplateMissing is returned by TemplateCheck when the template file does not exist.
	ErrTemplateMissing = errors.New("health: template missing")

	// ErrUnknownFormat is returned by Report.Encode for an unsupported output format.
	ErrUnknownFormat = errors.New("health: unknown output format")
)
