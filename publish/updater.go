// ABOUTME: End-to-end photo directory update pipeline
// ABOUTME: Reads rows and photos, lays out groups, builds requests, and replaces the document
package publish

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/photodir/config"
	"github.com/harperreed/photodir/directory"
	"github.com/harperreed/photodir/models"
	"github.com/harperreed/photodir/render"
	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
)

type Updater struct {
	Rows   RowSource
	Photos PhotoSource
	Docs   DocumentService
	Config *config.Config
	Logger *zap.Logger
}

// Plan is the read-only outcome of a run: the layout and the request batch
// that would be submitted.
type Plan struct {
	Directory *models.Directory
	Groups    []models.DisplayGroup
	Requests  []*docs.Request
}

func NewUpdater(cfg *config.Config, rows RowSource, photos PhotoSource, docSvc DocumentService, log *zap.Logger) *Updater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Updater{
		Rows:   rows,
		Photos: photos,
		Docs:   docSvc,
		Config: cfg,
		Logger: log,
	}
}

func (u *Updater) logger() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}

// Plan fetches rows and photos and computes the layout and request batch
// without touching the document.
func (u *Updater) Plan(ctx context.Context) (*Plan, error) {
	return u.plan(ctx, u.logger())
}

func (u *Updater) plan(ctx context.Context, log *zap.Logger) (*Plan, error) {
	rows, err := u.Rows.Rows(ctx, u.Config.SheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to read contact rows: %w", err)
	}
	log.Debug("rows loaded", zap.Int("rows", len(rows)))

	photos := map[string][]models.PhotoCandidate{}
	if u.Photos != nil {
		photos, err = u.Photos.PhotoCandidates(ctx, u.Config.PhotosFolderID)
		if err != nil {
			return nil, fmt.Errorf("failed to list photos: %w", err)
		}
	}
	log.Debug("photos loaded", zap.Int("contacts_with_photos", len(photos)))

	dir, err := directory.Normalize(rows, photos, directory.OptionsFromConfig(u.Config), log)
	if err != nil {
		return nil, err
	}

	groups := directory.Layout(dir, u.Config.PinnedTeams)

	reqs, err := render.NewBuilder(u.Config).All(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to build document requests: %w", err)
	}

	return &Plan{Directory: dir, Groups: groups, Requests: reqs}, nil
}

// Run replaces the document contents with the freshly built directory.
// A malformed header aborts before any remote mutation.
func (u *Updater) Run(ctx context.Context) (*Result, error) {
	log := u.logger().With(zap.String("run_id", uuid.NewString()), zap.String("document", u.Config.DocumentID))

	log.Info("gathering info on existing document")
	end, err := u.Docs.EndIndex(ctx, u.Config.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	plan, err := u.plan(ctx, log)
	if err != nil {
		return nil, err
	}

	log.Info("replacing document contents",
		zap.Int64("end_index", end),
		zap.Int("contacts", plan.Directory.Len()),
		zap.Int("groups", len(plan.Groups)),
		zap.Int("requests", len(plan.Requests)))

	res, err := ReplaceContents(ctx, u.Docs, u.Config.DocumentID, end, plan.Requests)
	if res != nil {
		res.Groups = len(plan.Groups)
		res.Contacts = plan.Directory.Len()
	}
	if err != nil {
		log.Error("document update failed", zap.Error(err))
		return res, err
	}

	log.Info("document updated", zap.Bool("deleted", res.Deleted), zap.Int("applied", res.Applied))
	return res, nil
}
