// Package cli implements the sendmail command line.
package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sendmail/internal/config"
	"github.com/dmitrymomot/sendmail/pkg/extpath"
	"github.com/dmitrymomot/sendmail/pkg/logger"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/view"
)

// Options configures the root command. Zero values use the process defaults.
type Options struct {
	Out io.Writer
	Err io.Writer
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
	// Transport replaces the configured transport when non-nil.
	Transport mailer.Transport
	// FS is the filesystem templates are read from; absolute paths are
	// resolved against its root. Defaults to os.DirFS("/").
	FS fs.FS
}

type runtimeState struct {
	opts      Options
	cfg       config.Config
	log       *slog.Logger
	paths     extpath.Dir
	transport mailer.Transport

	rootOverride      string
	transportOverride string
	levelOverride     string
}

type runtimeKey struct{}

// NewRootCommand creates the sendmail command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.FS == nil {
		opts.FS = os.DirFS("/")
	}
	rt := &runtimeState{opts: opts}

	root := &cobra.Command{
		Use:           "sendmail",
		Short:         "Compose, preview and send module mails",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return rt.load()
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().StringVar(&rt.rootOverride, "root", "", "Extension root directory (overrides SENDMAIL_EXTENSION_ROOT)")
	root.PersistentFlags().StringVar(&rt.transportOverride, "transport", "", "Transport: smtp, resend or memory (overrides SENDMAIL_TRANSPORT)")
	root.PersistentFlags().StringVar(&rt.levelOverride, "log-level", "", "Log level (overrides LOG_LEVEL)")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewSendCommand(),
		NewPreviewCommand(),
		NewServeCommand(),
		NewCheckCommand(),
	)
	return root
}

func (rt *runtimeState) load() error {
	var (
		cfg config.Config
		err error
	)
	if rt.opts.Environ != nil {
		cfg, err = config.LoadFrom(rt.opts.Environ)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if rt.rootOverride != "" {
		cfg.ExtensionRoot = rt.rootOverride
	}
	if rt.transportOverride != "" {
		cfg.Transport = rt.transportOverride
	}
	if rt.levelOverride != "" {
		cfg.Logger.Level = rt.levelOverride
	}

	paths, err := cfg.Paths()
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.paths = paths
	rt.log = logger.NewWriter(rt.opts.Err, cfg.Logger, logger.ModuleExtractor)
	return nil
}

// sender returns the transport lazily so commands that never send do not
// need valid transport settings.
func (rt *runtimeState) sender() (mailer.Transport, error) {
	if rt.transport != nil {
		return rt.transport, nil
	}
	if rt.opts.Transport != nil {
		rt.transport = rt.opts.Transport
		return rt.transport, nil
	}
	t, err := rt.cfg.NewTransport(rt.log)
	if err != nil {
		return nil, err
	}
	rt.transport = t
	return t, nil
}

func (rt *runtimeState) newMailer(transport mailer.Transport, viewOpts ...view.Option) *mailer.Mailer {
	if rt.cfg.ButtonClass != "" {
		viewOpts = append(viewOpts, view.WithButtonClass(rt.cfg.ButtonClass))
	}
	return mailer.New(
		rt.paths,
		transport,
		view.New(rt.opts.FS, viewOpts...),
		rt.cfg.Mailer,
		mailer.WithLogger(rt.log),
	)
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}
