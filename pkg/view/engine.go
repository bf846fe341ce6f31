package view

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/sanitizer"
)

// Engine renders mail templates from a filesystem.
//
// Templates ending in ".md" are markdown: the body is executed with
// text/template and converted to HTML with goldmark. Every other template is
// executed with html/template. Both may declare a layout in YAML front matter:
//
//	---
//	Layout: Default
//	---
//
// The layout is read from the layout root ("Default" resolves to
// "Default.html") and receives the rendered body as {{.Content}}.
// Every *.html file below the partial root is available to HTML templates and
// layouts as a named template, e.g. {{template "Footer" .}} or
// {{template "Email/Signature" .}}.
//
// Engine is safe for concurrent use.
type Engine struct {
	fs          fs.FS
	md          goldmark.Markdown
	cache       map[string]*compiled
	group       singleflight.Group
	buttonClass string
	noCache     bool
	mu          sync.RWMutex
}

// compiled is a parsed template, cached by file and partial root.
type compiled struct {
	metadata map[string]any
	text     *texttemplate.Template
	html     *htmltemplate.Template
}

// Option configures an Engine.
type Option func(*Engine)

// WithoutCache re-reads templates on every render.
// Useful while editing templates against a preview server.
func WithoutCache() Option {
	return func(e *Engine) { e.noCache = true }
}

// WithButtonClass sets the CSS class of markdown buttons.
func WithButtonClass(class string) Option {
	return func(e *Engine) { e.buttonClass = class }
}

// New creates an engine reading templates from filesystem.
// Absolute paths in render requests are resolved relative to the root of filesystem,
// so os.DirFS("/") serves host paths unchanged.
func New(filesystem fs.FS, opts ...Option) *Engine {
	e := &Engine{
		fs:    filesystem,
		cache: make(map[string]*compiled),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.md = goldmark.New(goldmark.WithExtensions(NewButtonExtension(e.buttonClass)))
	return e
}

var _ mailer.TemplateEngine = (*Engine)(nil)

// Render implements mailer.TemplateEngine.
func (e *Engine) Render(ctx context.Context, req mailer.RenderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := e.load(req.TemplateFile, req.PartialRootPath, ErrTemplateNotFound)
	if err != nil {
		return "", err
	}

	funcs := renderFuncs(req.ExtName)

	var body bytes.Buffer
	if tmpl.text != nil {
		if err := e.renderMarkdown(&body, tmpl, funcs, req.Variables); err != nil {
			return "", err
		}
	} else {
		if err := execHTML(&body, tmpl.html, funcs, req.Variables); err != nil {
			return "", err
		}
	}

	layoutName, _ := tmpl.metadata["Layout"].(string)
	if layoutName == "" {
		return body.String(), nil
	}

	layout, err := e.load(layoutFile(req.LayoutRootPath, layoutName), req.PartialRootPath, ErrLayoutNotFound)
	if err != nil {
		return "", err
	}
	if layout.html == nil {
		return "", fmt.Errorf("%w: layout %q must be an HTML template", ErrRenderFailed, layoutName)
	}

	var out bytes.Buffer
	err = execHTML(&out, layout.html, funcs, map[string]any{
		"Content":  htmltemplate.HTML(body.String()),
		"Metadata": tmpl.metadata,
		"Vars":     req.Variables,
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func (e *Engine) renderMarkdown(w *bytes.Buffer, tmpl *compiled, funcs map[string]any, vars map[string]any) error {
	bound, err := tmpl.text.Clone()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	var md bytes.Buffer
	if err := bound.Funcs(texttemplate.FuncMap(funcs)).Execute(&md, vars); err != nil {
		return fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}
	if err := e.md.Convert(md.Bytes(), w); err != nil {
		return fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
	}
	return nil
}

func execHTML(w *bytes.Buffer, tmpl *htmltemplate.Template, funcs map[string]any, data any) error {
	bound, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	if err := bound.Funcs(htmltemplate.FuncMap(funcs)).Execute(w, data); err != nil {
		return fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}
	return nil
}

// load returns the cached template or parses it. Concurrent loads of the
// same key share one parse.
func (e *Engine) load(file, partialRoot string, notFound error) (*compiled, error) {
	key := file + "\x00" + partialRoot

	if !e.noCache {
		e.mu.RLock()
		c, ok := e.cache[key]
		e.mu.RUnlock()
		if ok {
			return c, nil
		}
	}

	v, err, _ := e.group.Do(key, func() (any, error) {
		c, err := e.compile(file, partialRoot, notFound)
		if err != nil {
			return nil, err
		}
		if !e.noCache {
			e.mu.Lock()
			e.cache[key] = c
			e.mu.Unlock()
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*compiled), nil
}

func (e *Engine) compile(file, partialRoot string, notFound error) (*compiled, error) {
	content, err := fs.ReadFile(e.fs, fsPath(file))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", notFound, file, err)
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	name := path.Base(file)

	if strings.EqualFold(path.Ext(file), ".md") {
		tmpl, err := texttemplate.New(name).Funcs(texttemplate.FuncMap(renderFuncs(""))).Parse(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, file, err)
		}
		return &compiled{metadata: doc.Metadata, text: tmpl}, nil
	}

	tmpl, err := htmltemplate.New(name).Funcs(htmltemplate.FuncMap(renderFuncs(""))).Parse(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, file, err)
	}
	if err := e.addPartials(tmpl, partialRoot); err != nil {
		return nil, err
	}
	return &compiled{metadata: doc.Metadata, html: tmpl}, nil
}

// addPartials parses every *.html file below root into tmpl, named by its
// path relative to root without extension. A missing root is not an error.
func (e *Engine) addPartials(tmpl *htmltemplate.Template, root string) error {
	if root == "" {
		return nil
	}
	dir := fsPath(root)
	if _, err := fs.Stat(e.fs, dir); err != nil {
		return nil
	}

	return fs.WalkDir(e.fs, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".html") {
			return nil
		}

		content, err := fs.ReadFile(e.fs, p)
		if err != nil {
			return fmt.Errorf("%w: partial %s: %v", ErrRenderFailed, p, err)
		}

		rel := p
		if dir != "." {
			rel = strings.TrimPrefix(strings.TrimPrefix(p, dir), "/")
		}
		name := strings.TrimSuffix(rel, path.Ext(rel))
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("%w: partial %s: %v", ErrRenderFailed, p, err)
		}
		return nil
	})
}

// renderFuncs are available to every template. They are rebound per render
// so extName reflects the request.
func renderFuncs(extName string) map[string]any {
	return map[string]any{
		"extName": func() string { return extName },
		"safeHTML": func(s string) htmltemplate.HTML {
			return htmltemplate.HTML(sanitizer.SanitizeHTML(s))
		},
	}
}

func layoutFile(root, name string) string {
	if path.Ext(name) == "" {
		name += ".html"
	}
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root + name
}

// fsPath maps a host path onto an fs.FS name.
func fsPath(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}
