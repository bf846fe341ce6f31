package view

import "errors"

var (
	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout named by a template was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template parsing or execution failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML front matter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
