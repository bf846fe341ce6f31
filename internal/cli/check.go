package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sendmail/pkg/health"
	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

func NewCheckCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "check MODULE...",
		Short: "Verify that modules resolve and have a default template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			checks := moduleChecks(rt, rt.newMailer(nil), args)
			report := health.Run(cmd.Context(), checks, health.WithLogger(rt.log))

			if err := report.Encode(cmd.OutOrStdout(), health.Format(outputFormat)); err != nil {
				return err
			}
			return report.Err()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

func moduleChecks(rt *runtimeState, m *mailer.Mailer, modules []string) health.Checks {
	checks := make(health.Checks, 2*len(modules))
	for _, id := range modules {
		checks["module:"+id] = health.ModuleCheck(rt.paths, id)
		checks["template:"+id] = health.TemplateCheck(m, rt.opts.FS, id)
	}
	return checks
}
