// Package sanitizer cleans HTML for mail bodies.
//
// SanitizeHTML keeps basic formatting and drops everything that could run
// script or load remote content. PlainText turns an HTML mail body into the
// text/plain alternative sent alongside it.
package sanitizer
