// Package view renders mail templates for mailer.Request.
//
// An Engine reads templates through an fs.FS and implements
// mailer.TemplateEngine. A module lays out its resources like this:
//
//	Resources/Private/Templates/Email/HtmlBody.html
//	Resources/Private/Layouts/Default.html
//	Resources/Private/Partials/Footer.html
//
// A template picks its layout in front matter and can call partials by name:
//
//	---
//	Layout: Default
//	---
//	<p>Hello {{.Name}}</p>
//	{{template "Footer" .}}
//
// Markdown templates (".md") are supported too and may use the button syntax
// [!button|Label](URL) for call-to-action links.
//
// Templates can call extName to get the extension name of the request and
// safeHTML to embed caller-supplied HTML after sanitizing it.
package view
