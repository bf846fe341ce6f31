package logger

import (
	"context"
	"log/slog"
)

type moduleKey struct{}

// WithModule stores the module identifier of the mail being processed.
func WithModule(ctx context.Context, moduleID string) context.Context {
	if moduleID == "" {
		return ctx
	}
	return context.WithValue(ctx, moduleKey{}, moduleID)
}

// ModuleFromContext returns the module identifier stored by WithModule.
func ModuleFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(moduleKey{}).(string)
	return id, ok && id != ""
}

// ModuleExtractor adds a "module" attribute when the context carries one.
func ModuleExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ModuleFromContext(ctx); ok {
		return slog.String("module", id), true
	}
	return slog.Attr{}, false
}
