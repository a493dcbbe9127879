// ABOUTME: Document maintenance commands for manual repairs
// ABOUTME: delete-range and delete-row act directly on the configured document
package cli

import (
	"fmt"
	"strconv"

	"github.com/harperreed/photodir/sync"
	"github.com/spf13/cobra"
)

func parseIndices(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", arg, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("invalid index %q: must not be negative", arg)
		}
		out[i] = v
	}
	return out, nil
}

func (a *app) docsService(cmd *cobra.Command) (*sync.DocsService, error) {
	if err := a.cfg.Require(false, false, true); err != nil {
		return nil, err
	}
	opts, err := sync.ClientOptions(cmd.Context(), a.cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	return sync.NewDocsService(cmd.Context(), opts...)
}

func newDeleteRangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-range <start> <end>",
		Short: "Delete the content between two document indices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndices(args)
			if err != nil {
				return err
			}

			svc, err := a.docsService(cmd)
			if err != nil {
				return err
			}

			if err := svc.DeleteRange(cmd.Context(), a.cfg.DocumentID, idx[0], idx[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted range [%d, %d)\n", idx[0], idx[1])
			return nil
		},
	}
}

func newDeleteRowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-row <table-start> <row> <column>",
		Short: "Delete one row of the table starting at table-start",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndices(args)
			if err != nil {
				return err
			}

			svc, err := a.docsService(cmd)
			if err != nil {
				return err
			}

			if err := svc.DeleteTableRow(cmd.Context(), a.cfg.DocumentID, idx[0], idx[1], idx[2]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted row %d of table at %d\n", idx[1], idx[0])
			return nil
		},
	}
}
