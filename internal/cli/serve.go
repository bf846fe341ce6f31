package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sendmail/internal/server"
	"github.com/dmitrymomot/sendmail/pkg/view"
)

func NewServeCommand() *cobra.Command {
	var (
		addr    string
		modules []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered templates over HTTP while editing them",
		Long: `Serve rendered templates over HTTP while editing them.

Templates are re-read on every request. Open /preview/{module} and pass
template variables as var.NAME query parameters. Modules given with --module
are checked by /health/ready.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = rt.cfg.Server.Address
			}

			m := rt.newMailer(nil, view.WithoutCache())
			handler := server.NewRouter(server.Options{
				Mailer: m,
				Logger: rt.log,
				Checks: moduleChecks(rt, m, modules),
			})

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return server.Run(ctx, server.Config{
				Address:         addr,
				ShutdownTimeout: rt.cfg.Server.ShutdownTimeout,
				Logger:          rt.log,
			}, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides SENDMAIL_SERVER_ADDR)")
	cmd.Flags().StringArrayVar(&modules, "module", nil, "Module to check for readiness (repeatable)")

	return cmd
}
