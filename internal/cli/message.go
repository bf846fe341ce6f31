package cli

import (
	"fmt"
	"net/mail"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

// messageFlags are shared by send and preview.
type messageFlags struct {
	from     []string
	to       []string
	cc       []string
	bcc      []string
	subject  string
	text     string
	template string
	vars     map[string]string
}

func (f *messageFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringArrayVar(&f.from, "from", nil, `Sender address, e.g. "Shop <shop@example.com>"`)
	fl.StringArrayVar(&f.to, "to", nil, "Recipient address (repeatable)")
	fl.StringArrayVar(&f.cc, "cc", nil, "Carbon copy address (repeatable)")
	fl.StringArrayVar(&f.bcc, "bcc", nil, "Blind carbon copy address (repeatable)")
	fl.StringVar(&f.subject, "subject", "", "Mail subject")
	fl.StringVar(&f.text, "text", "", "Plain text content")
	fl.StringVar(&f.template, "template", "", "Template path relative to the template root")
	fl.StringToStringVar(&f.vars, "var", nil, "Template variable as key=value (repeatable)")
}

// apply copies the flags onto req. Variables take precedence over text.
func (f *messageFlags) apply(req *mailer.Request) error {
	from, err := parseAddresses(f.from)
	if err != nil {
		return err
	}
	to, err := parseAddresses(f.to)
	if err != nil {
		return err
	}
	cc, err := parseAddresses(f.cc)
	if err != nil {
		return err
	}
	bcc, err := parseAddresses(f.bcc)
	if err != nil {
		return err
	}

	req.SetFrom(from...).SetTo(to...).SetCc(cc...).SetBcc(bcc...).SetSubject(f.subject)

	if f.template != "" {
		req.SetViewConfig(mailer.ViewConfig{TemplateRelPath: f.template})
	}

	switch {
	case len(f.vars) > 0:
		vars := make(map[string]any, len(f.vars))
		for k, v := range f.vars {
			vars[k] = v
		}
		req.SetVariables(vars)
	case f.text != "":
		req.SetText(f.text)
	}
	return nil
}

// withPlaceholders fills the fields a preview never uses.
func (f *messageFlags) withPlaceholders() {
	if len(f.from) == 0 {
		f.from = []string{previewAddress}
	}
	if len(f.to) == 0 {
		f.to = []string{previewAddress}
	}
	if f.subject == "" {
		f.subject = previewSubject
	}
}

func parseAddresses(values []string) ([]mailer.Address, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]mailer.Address, 0, len(values))
	for _, v := range values {
		a, err := mail.ParseAddress(v)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %w", v, err)
		}
		out = append(out, mailer.NamedAddr(a.Name, a.Address))
	}
	return out, nil
}
