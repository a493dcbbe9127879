// ABOUTME: Two-phase document replacement against the Docs API
// ABOUTME: Clears the body, then submits the accumulated insert batch with no retry
package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/photodir/models"
	"github.com/harperreed/photodir/render"
	"google.golang.org/api/docs/v1"
)

// ErrDocumentCleared marks a failure after the delete phase succeeded; the
// target document is empty when it is returned.
var ErrDocumentCleared = errors.New("document was cleared but new content was not applied")

// RowSource returns sheet rows, header first.
type RowSource interface {
	Rows(ctx context.Context, sheetID string) ([][]string, error)
}

// PhotoSource lists photo candidates grouped by contact key.
type PhotoSource interface {
	PhotoCandidates(ctx context.Context, folderID string) (map[string][]models.PhotoCandidate, error)
}

// DocumentService is the subset of the Docs API the updater needs.
type DocumentService interface {
	EndIndex(ctx context.Context, docID string) (int64, error)
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) error
}

type Result struct {
	Deleted  bool `json:"deleted"`
	Applied  int  `json:"applied"`
	Groups   int  `json:"groups"`
	Contacts int  `json:"contacts"`
}

// ReplaceContents deletes [1, endIndex-1) and then applies reqs in one batch.
// The final newline of the body is kept. The delete is skipped when the
// document holds nothing but that newline, and the insert batch is skipped when
// reqs is empty.
func ReplaceContents(ctx context.Context, svc DocumentService, docID string, endIndex int64, reqs []*docs.Request) (*Result, error) {
	res := &Result{}

	if deleteEnd := endIndex - 1; deleteEnd > 1 {
		if err := svc.BatchUpdate(ctx, docID, []*docs.Request{render.DeleteRange(1, deleteEnd)}); err != nil {
			return res, fmt.Errorf("failed to delete document contents: %w", err)
		}
		res.Deleted = true
	}

	if len(reqs) == 0 {
		return res, nil
	}

	if err := svc.BatchUpdate(ctx, docID, reqs); err != nil {
		if res.Deleted {
			return res, fmt.Errorf("%w: %w", ErrDocumentCleared, err)
		}
		return res, fmt.Errorf("failed to apply document requests: %w", err)
	}
	res.Applied = len(reqs)

	return res, nil
}
