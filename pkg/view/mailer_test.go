package view_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendmail/pkg/extpath"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/mailer/memory"
	"github.com/dmitrymomot/sendmail/pkg/view"
)

func TestMailer_SendHTMLMatchesPreview(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"ext/demo/Resources/Private/Templates/Email/HtmlBody.html": &fstest.MapFile{
			Data: []byte("---\nLayout: Default\n---\n<h1>Hi {{.Name}}</h1>{{template \"Footer\" .}}"),
		},
		"ext/demo/Resources/Private/Layouts/Default.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"ext/demo/Resources/Private/Partials/Footer.html": &fstest.MapFile{
			Data: []byte(`<footer>{{extName}}</footer>`),
		},
	}

	transport := memory.New()
	m := mailer.New(
		extpath.NewMap(map[string]string{"demo": "/ext/demo"}),
		transport,
		view.New(fs),
		mailer.Config{},
	)

	req, err := m.NewRequest("tx_demo")
	require.NoError(t, err)
	req.SetFrom(mailer.Addr("a@x.com")).
		SetTo(mailer.Addr("b@x.com")).
		SetSubject("Welcome").
		SetVariables(map[string]any{"Name": "Alice"})

	preview, err := req.PreviewHTML(context.Background())
	require.NoError(t, err)
	require.Equal(t, `<html><body><h1>Hi Alice</h1><footer>demo</footer></body></html>`, preview)
	require.Empty(t, transport.Messages())

	require.NoError(t, req.SendHTML(context.Background()))

	sent, ok := transport.Last()
	require.True(t, ok)
	require.Equal(t, preview, sent.Body)
	require.Equal(t, mailer.ContentTypeHTML, sent.ContentType)
	require.Equal(t, "Welcome", sent.Subject)
}

func TestMailer_MissingTemplatePropagates(t *testing.T) {
	t.Parallel()

	transport := memory.New()
	m := mailer.New(
		extpath.NewMap(map[string]string{"demo": "/ext/demo"}),
		transport,
		view.New(fstest.MapFS{}),
		mailer.Config{},
	)

	req, err := m.NewRequest("tx_demo")
	require.NoError(t, err)

	err = req.SetFrom(mailer.Addr("a@x.com")).SetTo(mailer.Addr("b@x.com")).SetSubject("Hi").
		SetVariables(map[string]any{"Name": "Alice"}).
		SendHTML(context.Background())

	require.ErrorIs(t, err, view.ErrTemplateNotFound)
	require.Empty(t, transport.Messages())
}
