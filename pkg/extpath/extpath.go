package extpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

var (
	_ mailer.PathResolver = Dir("")
	_ mailer.PathResolver = (*Map)(nil)
)

// Fold normalizes a module name for lookup.
func Fold(name string) string {
	// Casers keep state; a fresh one per call keeps Fold safe for concurrent use.
	return cases.Fold().String(strings.TrimSpace(name))
}

// Dir resolves a module to the directory of the same name below the root.
type Dir string

// Resolve implements mailer.PathResolver.
func (d Dir) Resolve(moduleID string) (string, error) {
	name := Fold(moduleID)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrUnknownModule, moduleID)
	}

	p := filepath.Join(string(d), name)
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %q: no directory %s", ErrUnknownModule, moduleID, p)
	}
	return withSlash(p), nil
}

// Map resolves modules from a fixed registry.
type Map struct {
	paths map[string]string
}

// NewMap creates a registry from module names to base paths.
func NewMap(paths map[string]string) *Map {
	m := &Map{paths: make(map[string]string, len(paths))}
	for name, p := range paths {
		m.paths[Fold(name)] = withSlash(p)
	}
	return m
}

// Resolve implements mailer.PathResolver.
func (m *Map) Resolve(moduleID string) (string, error) {
	p, ok := m.paths[Fold(moduleID)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModule, moduleID)
	}
	return p, nil
}

func withSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
