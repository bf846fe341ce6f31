package smtp

// Config holds SMTP transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host               string `env:"SMTP_HOST" envDefault:"localhost"`
	Username           string `env:"SMTP_USERNAME"`
	Password           string `env:"SMTP_PASSWORD"`
	MessageIDDomain    string `env:"SMTP_MESSAGE_ID_DOMAIN"` // defaults to Host
	Port               int    `env:"SMTP_PORT" envDefault:"25"`
	InsecureSkipVerify bool   `env:"SMTP_INSECURE_SKIP_VERIFY"`
	// HTML bodies get a text/plain alternative unless this is set.
	DisableTextAlternative bool `env:"SMTP_DISABLE_TEXT_ALTERNATIVE"`
}
