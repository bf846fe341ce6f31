package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sendmail/pkg/health"
	"github.com/dmitrymomot/sendmail/pkg/logger"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

const requestTimeout = 30 * time.Second

// Options are the dependencies of the preview routes.
type Options struct {
	Mailer *mailer.Mailer
	Logger *slog.Logger
	Checks health.Checks
}

// NewRouter returns the preview server routes:
//
//	GET /preview/{module}  rendered HTML of the module's mail template
//	GET /health/live       liveness probe
//	GET /health/ready      readiness probe running Options.Checks
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNope()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(requestLogger(log))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(opts.Checks, health.WithLogger(log)))
	r.Get("/preview/{module}", previewHandler(opts.Mailer, log))

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}
