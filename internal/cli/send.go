package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSendCommand() *cobra.Command {
	var (
		flags messageFlags
		html  bool
	)

	cmd := &cobra.Command{
		Use:   "send MODULE",
		Short: "Send a mail for a module",
		Long: `Send a mail for a module.

Without --html the --text content is sent as text/plain. With --html, or when
--var is given, the module template is rendered and sent as text/html.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			transport, err := rt.sender()
			if err != nil {
				return err
			}

			req, err := rt.newMailer(transport).NewRequest(args[0])
			if err != nil {
				return err
			}
			if err := flags.apply(req); err != nil {
				return err
			}

			if html || len(flags.vars) > 0 {
				err = req.SendHTML(cmd.Context())
			} else {
				err = req.SendPlainText(cmd.Context())
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sent %q to %d recipient(s)\n",
				req.Subject(), len(req.To())+len(req.Cc())+len(req.Bcc()))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&html, "html", false, "Render the module template and send HTML")

	return cmd
}
