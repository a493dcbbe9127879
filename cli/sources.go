// ABOUTME: Row and photo source selection shared by update, preview, and requests
// ABOUTME: Chooses Google Sheets or a local file for rows and Drive or nothing for photos
package cli

import (
	"context"

	"github.com/harperreed/photodir/config"
	"github.com/harperreed/photodir/publish"
	"github.com/harperreed/photodir/sheetfile"
	"github.com/harperreed/photodir/sync"
	"github.com/spf13/cobra"
)

type sourceFlags struct {
	rowsFile string
	charset  string
	noPhotos bool
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rowsFile, "rows-file", "", "Read contacts from a local .csv or .xlsx instead of the Google Sheet")
	cmd.Flags().StringVar(&f.charset, "charset", "", "Charset of --rows-file when it is a csv (default utf-8)")
	cmd.Flags().BoolVar(&f.noPhotos, "no-photos", false, "Skip the Drive photo folder and use the placeholder image")
}

// require checks the config ids the selected sources depend on.
func (f *sourceFlags) require(cfg *config.Config, document bool) error {
	return cfg.Require(f.rowsFile == "", !f.noPhotos, document)
}

// needsGoogle reports whether any source has to talk to Google.
func (f *sourceFlags) needsGoogle() bool {
	return f.rowsFile == "" || !f.noPhotos
}

// sources builds the row and photo sources. svcs may be nil when needsGoogle is false.
func (f *sourceFlags) sources(svcs *sync.Services) (publish.RowSource, publish.PhotoSource) {
	var rows publish.RowSource
	if f.rowsFile != "" {
		rows = sheetfile.New(f.rowsFile, f.charset)
	} else {
		rows = svcs.Sheets
	}

	var photos publish.PhotoSource
	if !f.noPhotos {
		photos = svcs.Drive
	}
	return rows, photos
}

// planner returns an Updater for the selected sources. withDocs also connects
// the Docs API so the Updater can run.
func (a *app) planner(ctx context.Context, f *sourceFlags, withDocs bool) (*publish.Updater, error) {
	var svcs *sync.Services
	if withDocs || f.needsGoogle() {
		var err error
		svcs, err = sync.NewServices(ctx, a.cfg)
		if err != nil {
			return nil, err
		}
	}

	rows, photos := f.sources(svcs)
	u := publish.NewUpdater(a.cfg, rows, photos, nil, a.log)
	if svcs != nil {
		u.Docs = svcs.Docs
	}
	return u, nil
}
