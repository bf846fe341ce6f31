package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	previewAddress = "preview@localhost"
	previewSubject = "Preview"
)

func NewPreviewCommand() *cobra.Command {
	var flags messageFlags

	cmd := &cobra.Command{
		Use:   "preview MODULE",
		Short: "Render a module mail template to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			req, err := rt.newMailer(nil).NewRequest(args[0])
			if err != nil {
				return err
			}
			flags.withPlaceholders()
			if err := flags.apply(req); err != nil {
				return err
			}

			html, err := req.PreviewHTML(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
