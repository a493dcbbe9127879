// ABOUTME: Bundles the Docs, Sheets, and Drive clients used by an update run
// ABOUTME: Resolves credentials once and shares them across the three services
package sync

import (
	"context"

	"github.com/harperreed/photodir/config"
	"google.golang.org/api/option"
)

type Services struct {
	Docs   *DocsService
	Sheets *SheetsSource
	Drive  *DriveSource
}

// NewServices builds all three clients. Without explicit opts the credentials
// come from ClientOptions.
func NewServices(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*Services, error) {
	if len(opts) == 0 {
		var err error
		opts, err = ClientOptions(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
	}

	docsSvc, err := NewDocsService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	sheetsSvc, err := NewSheetsSource(ctx, cfg.SheetRange, opts...)
	if err != nil {
		return nil, err
	}
	driveSvc, err := NewDriveSource(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Services{Docs: docsSvc, Sheets: sheetsSvc, Drive: driveSvc}, nil
}
