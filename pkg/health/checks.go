package health

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

// ModuleCheck fails when moduleID cannot be turned into a request,
// e.g. because the resolver does not know the module.
func ModuleCheck(paths mailer.PathResolver, moduleID string) CheckFunc {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := mailer.NewRequest(moduleID, paths, nil, nil)
		return err
	}
}

// TemplateCheck fails when the default HTML template of moduleID is missing from fsys.
// Absolute template paths are looked up relative to the root of fsys.
func TemplateCheck(m *mailer.Mailer, fsys fs.FS, moduleID string) CheckFunc {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := m.NewRequest(moduleID)
		if err != nil {
			return err
		}

		file := req.ResolvedView().TemplateFile
		name := strings.TrimPrefix(file, "/")
		if name == "" {
			name = "."
		}

		info, err := fs.Stat(fsys, name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("%w: %s", ErrTemplateMissing, file)
		case err != nil:
			return err
		case info.IsDir():
			return fmt.Errorf("%w: %s is a directory", ErrTemplateMissing, file)
		}
		return nil
	}
}
