// ABOUTME: update command: rebuilds the directory document
// ABOUTME: Clears the target document and applies the full insert batch
package cli

import (
	"errors"
	"fmt"

	"github.com/harperreed/photodir/publish"
	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the directory document with current contacts and photos",
		Example: `  # Rebuild from the configured sheet and photo folder
  photodir update

  # Rebuild from a local export, still pulling photos from Drive
  photodir update --rows-file contacts.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := src.require(a.cfg, true); err != nil {
				return err
			}

			u, err := a.planner(cmd.Context(), &src, true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Updating photo directory...")

			res, err := u.Run(cmd.Context())
			if err != nil {
				if errors.Is(err, publish.ErrDocumentCleared) {
					_, _ = fmt.Fprintln(out, "  ✗ Document was cleared but the new content was rejected; re-run update to repopulate it")
				}
				return fmt.Errorf("update failed: %w", err)
			}

			if res.Deleted {
				_, _ = fmt.Fprintln(out, "  ✓ Cleared existing contents")
			}
			_, _ = fmt.Fprintf(out, "  ✓ Placed %d contacts in %d rows (%d requests)\n", res.Contacts, res.Groups, res.Applied)
			_, _ = fmt.Fprintln(out, "Done.")
			return nil
		},
	}

	src.bind(cmd)
	return cmd
}
