package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sendmail/pkg/extpath"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/view"
)

// Query parameters understood by the preview route.
// Every parameter prefixed with "var." becomes a template variable.
const (
	paramFrom     = "from"
	paramTo       = "to"
	paramSubject  = "subject"
	paramTemplate = "template"
	paramText     = "text"
	varPrefix     = "var."

	previewAddress = "preview@localhost"
	previewSubject = "Preview"
)

func previewHandler(m *mailer.Mailer, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := m.NewRequest(chi.URLParam(r, "module"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		q := r.URL.Query()
		req.SetFrom(mailer.Addr(queryOr(q.Get(paramFrom), previewAddress))).
			SetTo(mailer.Addr(queryOr(q.Get(paramTo), previewAddress))).
			SetSubject(queryOr(q.Get(paramSubject), previewSubject))

		if tmpl := q.Get(paramTemplate); tmpl != "" {
			if !validTemplatePath(tmpl) {
				http.Error(w, "invalid template path", http.StatusBadRequest)
				return
			}
			req.SetViewConfig(mailer.ViewConfig{TemplateRelPath: tmpl})
		}

		if vars := queryVariables(q); len(vars) > 0 {
			req.SetVariables(vars)
		} else if text := q.Get(paramText); text != "" {
			req.SetText(text)
		}

		html, err := req.PreviewHTML(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}
}

func queryVariables(q map[string][]string) map[string]any {
	vars := make(map[string]any)
	for key, values := range q {
		name, ok := strings.CutPrefix(key, varPrefix)
		if !ok || name == "" || len(values) == 0 {
			continue
		}
		if len(values) == 1 {
			vars[name] = values[0]
			continue
		}
		vars[name] = values
	}
	return vars
}

// validTemplatePath accepts relative paths that stay below the template root.
func validTemplatePath(p string) bool {
	return !strings.HasPrefix(p, "/") && fs.ValidPath(p)
}

func queryOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// writeError answers with a fixed message per status. Resolver and engine
// errors carry host paths, so the detail only goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "preview failed", slog.String("error", err.Error()))
	} else {
		log.InfoContext(r.Context(), "preview rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
	http.Error(w, msg, status)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, extpath.ErrUnknownModule):
		return http.StatusNotFound, extpath.ErrUnknownModule.Error()
	case errors.Is(err, view.ErrTemplateNotFound):
		return http.StatusNotFound, view.ErrTemplateNotFound.Error()
	case errors.Is(err, view.ErrLayoutNotFound):
		return http.StatusNotFound, view.ErrLayoutNotFound.Error()
	case errors.Is(err, mailer.ErrIncompleteRequest), errors.Is(err, mailer.ErrNoModuleID):
		// field-level messages hold no paths
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
