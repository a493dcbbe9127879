// ABOUTME: Root command and shared state for the photodir CLI
// ABOUTME: Loads .env and YAML config, builds the zap logger, and wires subcommands
package cli

import (
	"fmt"

	"github.com/harperreed/photodir/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	configPath string
	debug      bool

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "photodir",
		Short: "Build a photo directory Google Doc from a contact sheet and a photo folder",
		Long: `photodir fills a Google Doc with a three-wide photo directory.

Contacts come from a Google Sheet (or a local .csv/.xlsx export), photos from a
Google Drive folder. Teams are laid out in order, Admin and Finance first, and
the document is rebuilt in a single batch.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			log, err := newLogger(a.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/photodir/config.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newAuthCmd(a))
	cmd.AddCommand(newUpdateCmd(a))
	cmd.AddCommand(newPreviewCmd(a))
	cmd.AddCommand(newRequestsCmd(a))
	cmd.AddCommand(newDeleteRangeCmd(a))
	cmd.AddCommand(newDeleteRowCmd(a))

	return cmd
}
