// Package logger builds the structured loggers used across sendmail.
//
// Loggers are plain *slog.Logger values. The handler chain adds attributes
// extracted from the context on every call, so request-scoped values such as
// the module a mail belongs to show up on every record without being passed
// around explicitly:
//
//	log := logger.New(logger.Config{Level: "debug"}, logger.ModuleExtractor)
//
//	ctx := logger.WithModule(context.Background(), "tx_demo")
//	log.InfoContext(ctx, "mail sent")
//	// {"level":"INFO","msg":"mail sent","module":"tx_demo"}
//
// # Sentry
//
// When Config.Sentry.DSN is set, records at warn level and above are also
// forwarded to Sentry; errors create issues. An empty DSN or a failed SDK
// initialization falls back to stdout only.
//
// # Libraries
//
// Library packages default to NewNope so they stay silent unless the caller
// passes a logger in.
package logger
