package health

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Format selects how a Report is encoded.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ContentType returns the media type for f. Unknown formats map to plain text.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Encode writes the report to w. An empty format means FormatText.
//
// Text output has one line per check in name order:
//
//	ok   module:tx_shop
//	FAIL template:tx_blog: health: template missing
//
// A report without checks prints its status alone.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case "", FormatText:
		return r.encodeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func (r *Report) encodeText(w io.Writer) error {
	if len(r.Checks) == 0 {
		_, err := fmt.Fprintln(w, r.Status)
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(r.Checks)) {
		res := r.Checks[name]
		var err error
		if res.Status == StatusHealthy {
			_, err = fmt.Fprintf(w, "ok   %s\n", name)
		} else {
			_, err = fmt.Fprintf(w, "FAIL %s: %s\n", name, res.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
