package mailer

import "fmt"

// MIME types a Message body may carry.
const (
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
)

// Address is a single mailbox, optionally with a display name.
type Address struct {
	Email string
	Name  string
}

// Addr creates an Address without a display name.
func Addr(email string) Address {
	return Address{Email: email}
}

// NamedAddr creates an Address with a display name.
func NamedAddr(name, email string) Address {
	return Address{Email: email, Name: name}
}

// String formats the address as "Name <email>" if a name is set, otherwise just email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Addresses formats each address with String.
func Addresses(list []Address) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.String()
	}
	return out
}

// Content is the body source of a request: either PlainText or Variables.
type Content interface {
	isEmpty() bool
	content()
}

// PlainText is a literal body sent as text/plain.
type PlainText string

func (c PlainText) isEmpty() bool { return c == "" }
func (PlainText) content()        {}

// Variables are bound by name into the HTML template.
type Variables map[string]any

func (c Variables) isEmpty() bool { return len(c) == 0 }
func (Variables) content()        {}

// isEmptyContent treats a nil interface the same as an empty value.
func isEmptyContent(c Content) bool {
	return c == nil || c.isEmpty()
}

// Message is a fully-built email handed to a Transport.
type Message struct {
	Subject     string
	Body        string
	ContentType string // ContentTypePlain or ContentTypeHTML
	From        []Address
	To          []Address
	Cc          []Address
	Bcc         []Address
}

// IsHTML reports whether the body is HTML markup.
func (m *Message) IsHTML() bool {
	return m.ContentType == ContentTypeHTML
}
