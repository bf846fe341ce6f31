package mailer

import "strings"

// Relative subpaths of a module's base path holding view resources.
const (
	templatesSubpath = "Resources/Private/Templates/"
	layoutsSubpath   = "Resources/Private/Layouts/"
	partialsSubpath  = "Resources/Private/Partials/"
)

// ViewConfig controls template resolution for HTML mails.
// Empty fields are treated as absent when merging.
type ViewConfig struct {
	ExtKey           string
	ExtName          string
	TemplateRootPath string
	LayoutRootPath   string
	PartialRootPath  string
	TemplateRelPath  string
}

// DefaultViewConfig derives the view configuration for a module rooted at basePath.
func DefaultViewConfig(extKey, extName, basePath, templateRelPath string) ViewConfig {
	if basePath != "" && !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return ViewConfig{
		ExtKey:           extKey,
		ExtName:          extName,
		TemplateRootPath: basePath + templatesSubpath,
		LayoutRootPath:   basePath + layoutsSubpath,
		PartialRootPath:  basePath + partialsSubpath,
		TemplateRelPath:  templateRelPath,
	}
}

// Merge returns c with every non-empty field of overrides applied on top.
// The merge is shallow: each field is replaced as a whole.
func (c ViewConfig) Merge(overrides ViewConfig) ViewConfig {
	out := c
	if overrides.ExtKey != "" {
		out.ExtKey = overrides.ExtKey
	}
	if overrides.ExtName != "" {
		out.ExtName = overrides.ExtName
	}
	if overrides.TemplateRootPath != "" {
		out.TemplateRootPath = overrides.TemplateRootPath
	}
	if overrides.LayoutRootPath != "" {
		out.LayoutRootPath = overrides.LayoutRootPath
	}
	if overrides.PartialRootPath != "" {
		out.PartialRootPath = overrides.PartialRootPath
	}
	if overrides.TemplateRelPath != "" {
		out.TemplateRelPath = overrides.TemplateRelPath
	}
	return out
}

// ResolvedView is a view configuration reduced to what a template engine needs.
type ResolvedView struct {
	TemplateFile    string
	LayoutRootPath  string
	PartialRootPath string
	ExtName         string
}

// ResolveView merges overrides over base and resolves the template file path.
func ResolveView(base, overrides ViewConfig) ResolvedView {
	merged := base.Merge(overrides)
	return ResolvedView{
		TemplateFile:    merged.TemplateRootPath + merged.TemplateRelPath,
		LayoutRootPath:  merged.LayoutRootPath,
		PartialRootPath: merged.PartialRootPath,
		ExtName:         merged.ExtName,
	}
}

// RenderRequest is passed to a TemplateEngine.
type RenderRequest struct {
	Variables       map[string]any
	TemplateFile    string
	LayoutRootPath  string
	PartialRootPath string
	ExtName         string
}

// RenderRequest binds variables to the resolved view.
func (v ResolvedView) RenderRequest(vars map[string]any) RenderRequest {
	return RenderRequest{
		TemplateFile:    v.TemplateFile,
		LayoutRootPath:  v.LayoutRootPath,
		PartialRootPath: v.PartialRootPath,
		ExtName:         v.ExtName,
		Variables:       vars,
	}
}
