package view

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// Document is a template file split into front matter and body.
type Document struct {
	Metadata map[string]any
	Body     string
}

// Layout returns the layout name declared in the front matter, if any.
func (d *Document) Layout() string {
	name, _ := d.Metadata["Layout"].(string)
	return name
}

// ParseDocument splits content into YAML front matter and body.
// Content without a leading "---" has no metadata.
func ParseDocument(content []byte) (*Document, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Document{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	head, body, ok := splitAtClosingDelimiter(rest)
	if !ok {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metadata := map[string]any{}
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Document{Metadata: metadata, Body: string(body)}, nil
}

// splitAtClosingDelimiter finds the first line consisting only of "---".
// body starts after that line's break.
func splitAtClosingDelimiter(rest []byte) (head, body []byte, ok bool) {
	for start := 0; start <= len(rest); {
		lineEnd := bytes.IndexByte(rest[start:], '\n')
		next := len(rest)
		line := rest[start:]
		if lineEnd != -1 {
			line = rest[start : start+lineEnd]
			next = start + lineEnd + 1
		}

		if bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), frontmatterDelimiter) {
			return rest[:start], rest[next:], true
		}
		if lineEnd == -1 {
			break
		}
		start = next
	}
	return nil, nil, false
}
