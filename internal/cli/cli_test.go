package cli_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendmail/internal/cli"
	"github.com/dmitrymomot/sendmail/internal/config"
	"github.com/dmitrymomot/sendmail/pkg/extpath"
	"github.com/dmitrymomot/sendmail/pkg/health"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/mailer/memory"
)

// newExtensionRoot creates an extension root holding the "shop" module.
func newExtensionRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	templates := filepath.Join(root, "shop", "Resources", "Private", "Templates", "Email")
	require.NoError(t, os.MkdirAll(templates, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templates, "HtmlBody.html"),
		[]byte(`<p>Hello {{.Name}}</p>`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(templates, "Order.html"),
		[]byte(`<p>Order {{.Number}}</p>`), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "blog"), 0o755))
	return root
}

func execute(t *testing.T, transport mailer.Transport, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := cli.NewRootCommand(cli.Options{
		Out:       &out,
		Err:       io.Discard,
		Environ:   map[string]string{"SENDMAIL_EXTENSION_ROOT": newExtensionRoot(t)},
		Transport: transport,
	})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSend_PlainText(t *testing.T) {
	t.Parallel()

	transport := memory.New()
	out, err := execute(t, transport, "send", "tx_shop",
		"--from", "Shop <shop@example.test>",
		"--to", "a@example.test",
		"--bcc", "audit@example.test",
		"--subject", "Hi",
		"--text", "Hello",
	)
	require.NoError(t, err)
	assert.Equal(t, "sent \"Hi\" to 2 recipient(s)\n", out)

	msg, ok := transport.Last()
	require.True(t, ok)
	assert.Equal(t, mailer.ContentTypePlain, msg.ContentType)
	assert.Equal(t, "Hello", msg.Body)
	assert.Equal(t, []mailer.Address{mailer.NamedAddr("Shop", "shop@example.test")}, msg.From)
	assert.Equal(t, []mailer.Address{mailer.Addr("audit@example.test")}, msg.Bcc)
}

func TestSend_HTML(t *testing.T) {
	t.Parallel()

	transport := memory.New()
	_, err := execute(t, transport, "send", "tx_shop",
		"--from", "shop@example.test",
		"--to", "a@example.test",
		"--to", "b@example.test",
		"--subject", "Hi",
		"--var", "Name=Alice",
	)
	require.NoError(t, err)

	msg, ok := transport.Last()
	require.True(t, ok)
	assert.Equal(t, mailer.ContentTypeHTML, msg.ContentType)
	assert.Equal(t, "<p>Hello Alice</p>", msg.Body)
	assert.Len(t, msg.To, 2)
	assert.Empty(t, msg.Cc)
}

func TestSend_DisplayNameWithComma(t *testing.T) {
	t.Parallel()

	transport := memory.New()
	_, err := execute(t, transport, "send", "tx_shop",
		"--from", `"Doe, John" <j@x.test>`,
		"--to", `"Roe, Jane" <jane@x.test>`,
		"--subject", "Hi",
		"--text", "Hello",
	)
	require.NoError(t, err)

	msg, ok := transport.Last()
	require.True(t, ok)
	assert.Equal(t, []mailer.Address{mailer.NamedAddr("Doe, John", "j@x.test")}, msg.From)
	assert.Equal(t, []mailer.Address{mailer.NamedAddr("Roe, Jane", "jane@x.test")}, msg.To)
}

func TestSend_HTMLTemplateOverride(t *testing.T) {
	t.Parallel()

	transport := memory.New()
	_, err := execute(t, transport, "send", "tx_shop",
		"--from", "shop@example.test",
		"--to", "a@example.test",
		"--subject", "Order",
		"--template", "Email/Order.html",
		"--var", "Number=42",
	)
	require.NoError(t, err)

	msg, ok := transport.Last()
	require.True(t, ok)
	assert.Equal(t, "<p>Order 42</p>", msg.Body)
}

func TestSend_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		transport := memory.New()
		_, err := execute(t, transport, "send", "tx_shop", "--from", "a@x.com", "--to", "b@x.com", "--text", "Hello")

		var incomplete *mailer.IncompleteRequestError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, mailer.FieldSubject, incomplete.Field)
		assert.Empty(t, transport.Messages())
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, memory.New(), "send", "tx_news", "--from", "a@x.com", "--to", "b@x.com", "--subject", "Hi", "--text", "Hello")
		require.ErrorIs(t, err, extpath.ErrUnknownModule)
	})

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, memory.New(), "send", "tx_shop", "--from", "not an address", "--to", "b@x.com", "--subject", "Hi", "--text", "Hello")
		require.ErrorContains(t, err, "invalid address")
	})

	t.Run("unquoted comma is not split", func(t *testing.T) {
		t.Parallel()

		transport := memory.New()
		_, err := execute(t, transport, "send", "tx_shop", "--from", "Doe, John <j@x.test>", "--to", "b@x.com", "--subject", "Hi", "--text", "Hello")
		require.ErrorContains(t, err, "invalid address")
		assert.Empty(t, transport.Messages())
	})

	t.Run("unknown transport", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, nil, "send", "tx_shop", "--transport", "pigeon", "--from", "a@x.com", "--to", "b@x.com", "--subject", "Hi", "--text", "Hello")
		require.ErrorIs(t, err, config.ErrUnknownTransport)
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	transport := memory.New()
	out, err := execute(t, transport, "preview", "tx_shop", "--var", "Name=Bob")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello Bob</p>\n", out)
	assert.Empty(t, transport.Messages())

	_, err = execute(t, transport, "preview", "tx_shop")
	require.ErrorIs(t, err, mailer.ErrIncompleteRequest)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, err := execute(t, nil, "check", "tx_shop")
	require.NoError(t, err)
	assert.Equal(t, "ok   module:tx_shop\nok   template:tx_shop\n", out)

	out, err = execute(t, nil, "check", "tx_shop", "tx_blog", "-o", "json")
	require.ErrorIs(t, err, health.ErrCheckFailed)

	var report health.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, health.StatusUnhealthy, report.Status)
	assert.Equal(t, health.StatusHealthy, report.Checks["module:tx_blog"].Status)
	assert.Equal(t, health.StatusUnhealthy, report.Checks["template:tx_blog"].Status)
}
