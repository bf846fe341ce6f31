package health

import (
	"bytes"
	"net/http"
	"strings"
)

// LivenessHandler reports healthy for as long as the process answers.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, &Report{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks per request. Any failure turns the response into a 503.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, run(r.Context(), checks, cfg))
	}
}

func respond(w http.ResponseWriter, r *http.Request, report *Report) {
	f := negotiate(r)

	var buf bytes.Buffer
	if err := report.Encode(&buf, f); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}

	h := w.Header()
	h.Set("Content-Type", f.ContentType())
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// negotiate picks the format from ?format= first, then from the Accept header.
func negotiate(r *http.Request) Format {
	switch f := Format(r.URL.Query().Get("format")); f {
	case FormatText, FormatJSON, FormatYAML:
		return f
	}

	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "application/json"):
		return FormatJSON
	case strings.Contains(accept, "yaml"):
		return FormatYAML
	default:
		return FormatText
	}
}
