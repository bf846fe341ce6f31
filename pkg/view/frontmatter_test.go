package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDocument_WithFrontmatter(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("---\nLayout: Default\nAuthor: System\n---\n<p>Hello</p>\n"))
	require.NoError(t, err)
	require.Equal(t, "Default", doc.Layout())
	require.Equal(t, "System", doc.Metadata["Author"])
	require.Equal(t, "<p>Hello</p>\n", doc.Body)
}

func TestParseDocument_CRLF(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("---\r\nLayout: Default\r\n---\r\nBody"))
	require.NoError(t, err)
	require.Equal(t, "Default", doc.Layout())
	require.Equal(t, "Body", doc.Body)
}

func TestParseDocument_WithoutFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("<p>just a body</p>")

	doc, err := ParseDocument(content)
	require.NoError(t, err)
	require.Empty(t, doc.Metadata)
	require.Empty(t, doc.Layout())
	require.Equal(t, string(content), doc.Body)
}

func TestParseDocument_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("---\n\n---\nBody content."))
	require.NoError(t, err)
	require.Empty(t, doc.Metadata)
	require.Equal(t, "Body content.", doc.Body)
}

func TestParseDocument_ClosingDelimiterOnOwnLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		metadata map[string]any
		body     string
	}{
		{
			name:     "dashes inside a value",
			content:  "---\nTitle: a---b\nLayout: Default\n---\n<p>body</p>",
			metadata: map[string]any{"Title": "a---b", "Layout": "Default"},
			body:     "<p>body</p>",
		},
		{
			name:     "quoted dashes value",
			content:  "---\r\nRule: \"---\"\r\nLayout: Default\r\n---\r\nBody",
			metadata: map[string]any{"Rule": "---", "Layout": "Default"},
			body:     "Body",
		},
		{
			name:     "delimiter at end of file",
			content:  "---\nLayout: Default\n---",
			metadata: map[string]any{"Layout": "Default"},
			body:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument([]byte(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.metadata, doc.Metadata)
			require.Equal(t, tt.body, doc.Body)
		})
	}
}

func TestParseDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing closing delimiter", "---\nLayout: Default\nBody"},
		{"nothing after opening delimiter", "---"},
		{"invalid yaml", "---\nTags: [unclosed\n---\nBody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
			require.Nil(t, doc)
		})
	}
}

func TestDocument_LayoutIgnoresNonString(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("---\nLayout: 42\n---\nBody"))
	require.NoError(t, err)
	require.Empty(t, doc.Layout())
}
