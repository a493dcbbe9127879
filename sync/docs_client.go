// ABOUTME: Google Docs API client for the directory document
// ABOUTME: Reads the body end index and submits batchUpdate requests
package sync

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/harperreed/photodir/render"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var ErrNotFound = errors.New("google object not found")

type DocsService struct {
	svc *docs.Service
}

// NewDocsService creates a Google Docs API client.
func NewDocsService(ctx context.Context, opts ...option.ClientOption) (*DocsService, error) {
	service, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}
	return &DocsService{svc: service}, nil
}

// Get returns the full document snapshot.
func (d *DocsService) Get(ctx context.Context, docID string) (*docs.Document, error) {
	doc, err := d.svc.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, apiError("document", docID, err)
	}
	return doc, nil
}

// EndIndex returns the end index of the last structural element of the body.
func (d *DocsService) EndIndex(ctx context.Context, docID string) (int64, error) {
	doc, err := d.Get(ctx, docID)
	if err != nil {
		return 0, err
	}
	return BodyEndIndex(doc), nil
}

// BodyEndIndex returns the end index of the body, 0 for a document without content.
func BodyEndIndex(doc *docs.Document) int64 {
	if doc == nil || doc.Body == nil || len(doc.Body.Content) == 0 {
		return 0
	}
	return doc.Body.Content[len(doc.Body.Content)-1].EndIndex
}

// BatchUpdate submits reqs as a single batch; the API applies them in order.
func (d *DocsService) BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) error {
	_, err := d.svc.Documents.BatchUpdate(docID, &docs.BatchUpdateDocumentRequest{Requests: reqs}).Context(ctx).Do()
	if err != nil {
		return apiError("document", docID, err)
	}
	return nil
}

// DeleteRange removes [start, end) from the document.
func (d *DocsService) DeleteRange(ctx context.Context, docID string, start, end int64) error {
	if end <= start {
		return fmt.Errorf("invalid range [%d, %d)", start, end)
	}
	return d.BatchUpdate(ctx, docID, []*docs.Request{render.DeleteRange(start, end)})
}

// DeleteTableRow removes a row from the table that starts at tableStart.
func (d *DocsService) DeleteTableRow(ctx context.Context, docID string, tableStart, row, column int64) error {
	return d.BatchUpdate(ctx, docID, []*docs.Request{render.DeleteTableRow(tableStart, row, column)})
}

func apiError(kind, id string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return fmt.Errorf("failed to access %s %s: %w", kind, id, err)
}
