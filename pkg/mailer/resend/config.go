package resend

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
	// Tags attached to every message, e.g. {"source": "sendmail"}.
	Tags map[string]string `env:"RESEND_TAGS"`
}
