package mailer

// DefaultTemplateRelPath is the template used for HTML mails when no
// override is configured, relative to the template root.
const DefaultTemplateRelPath = "Email/HtmlBody.html"

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	TemplateRelPath string `env:"MAILER_TEMPLATE_REL_PATH" envDefault:"Email/HtmlBody.html"`
}

func (c Config) templateRelPath() string {
	if c.TemplateRelPath == "" {
		return DefaultTemplateRelPath
	}
	return c.TemplateRelPath
}
