// ABOUTME: preview and requests commands: read-only views of an update
// ABOUTME: Show the computed layout or dump the batchUpdate requests as JSON
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the directory layout without touching the document",
		Example: `  # Preview an offline export with placeholder photos
  photodir preview --rows-file contacts.csv --no-photos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := src.require(a.cfg, false); err != nil {
				return err
			}

			u, err := a.planner(cmd.Context(), &src, false)
			if err != nil {
				return err
			}

			plan, err := u.Plan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(plan.Groups) > 0 {
				_, _ = fmt.Fprintln(out, renderPreview(plan.Groups, a.cfg.PlaceholderURL))
			}
			_, _ = fmt.Fprint(out, previewSummary(plan.Directory, plan.Groups, a.cfg.PlaceholderURL))
			return nil
		},
	}

	src.bind(cmd)
	return cmd
}

func newRequestsCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Print the batchUpdate requests an update would submit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := src.require(a.cfg, false); err != nil {
				return err
			}

			u, err := a.planner(cmd.Context(), &src, false)
			if err != nil {
				return err
			}

			plan, err := u.Plan(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"requests": plan.Requests})
		},
	}

	src.bind(cmd)
	return cmd
}
