// Package mailer builds and dispatches plain-text and templated HTML mails.
//
// The package holds no transport or template logic of its own. A Mailer is
// wired with three collaborators and hands out one Request per message:
//
//   - PathResolver: maps a module identifier to its base directory
//   - TemplateEngine: renders an HTML template with layouts and partials
//   - Transport: delivers a fully-built Message
//
// # Usage
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/sendmail/pkg/extpath"
//		"github.com/dmitrymomot/sendmail/pkg/mailer"
//		"github.com/dmitrymomot/sendmail/pkg/mailer/smtp"
//		"github.com/dmitrymomot/sendmail/pkg/view"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		m := mailer.New(
//			extpath.Dir("/var/www/ext"),
//			smtp.New(smtp.Config{Host: "localhost", Port: 25}),
//			view.New(os.DirFS("/")),
//			mailer.Config{},
//		)
//
//		req, err := m.NewRequest("tx_demo")
//		if err != nil {
//			panic(err)
//		}
//
//		err = req.
//			SetFrom(mailer.NamedAddr("Shop", "shop@example.com")).
//			SetTo(mailer.Addr("customer@example.com")).
//			SetSubject("Your order").
//			SetVariables(map[string]any{"Name": "Alice"}).
//			SendHTML(ctx)
//		if err != nil {
//			panic(err)
//		}
//	}
//
// # Terminal Operations
//
// A Request is consumed by exactly one of:
//
//   - SendPlainText: sends PlainText content as text/plain
//   - SendHTML: renders the module template with Variables and sends text/html
//   - PreviewHTML: renders like SendHTML and returns the markup without sending
//
// Each operation first checks that from, to, subject and content are set,
// in that order, and fails with *IncompleteRequestError naming the first
// empty field. Nothing is rendered or sent when the check fails.
//
// # View Configuration
//
// For module "tx_demo" resolved to "/ext/demo/" the default view is:
//
//	template root: /ext/demo/Resources/Private/Templates/
//	layout root:   /ext/demo/Resources/Private/Layouts/
//	partial root:  /ext/demo/Resources/Private/Partials/
//	template:      Email/HtmlBody.html
//
// SetViewConfig overrides individual fields; empty fields keep the default.
//
// # Errors
//
//   - *ConfigurationError (matches ErrConfiguration): missing module identifier,
//     missing collaborator, or content that does not fit the operation
//   - *IncompleteRequestError (matches ErrIncompleteRequest): a required field is empty
//
// Errors from the path resolver, template engine and transport are returned
// unchanged.
package mailer
