// ABOUTME: Google Drive API client for the contact photo folder
// ABOUTME: Lists image files page by page and groups them by contact key
package sync

import (
	"context"
	"fmt"

	"github.com/harperreed/photodir/directory"
	"github.com/harperreed/photodir/models"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const photoFields = "nextPageToken, files(id, name, size, webContentLink)"

type DriveSource struct {
	svc *drive.Service
}

// NewDriveSource creates a Google Drive API client.
func NewDriveSource(ctx context.Context, opts ...option.ClientOption) (*DriveSource, error) {
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &DriveSource{svc: service}, nil
}

// ListPhotos returns every image in the folder, ordered by name.
func (d *DriveSource) ListPhotos(ctx context.Context, folderID string) ([]models.PhotoCandidate, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false and mimeType contains 'image/'", folderID)

	var out []models.PhotoCandidate
	err := d.svc.Files.List().
		Q(q).
		Fields(photoFields).
		OrderBy("name").
		PageSize(1000).
		Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				out = append(out, models.PhotoCandidate{
					Name: f.Name,
					URL:  photoURL(f),
					Size: f.Size,
				})
			}
			return nil
		})
	if err != nil {
		return nil, apiError("folder", folderID, err)
	}
	return out, nil
}

// PhotoCandidates lists the folder and groups files by contact key.
func (d *DriveSource) PhotoCandidates(ctx context.Context, folderID string) (map[string][]models.PhotoCandidate, error) {
	files, err := d.ListPhotos(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return directory.GroupPhotos(files), nil
}

func photoURL(f *drive.File) string {
	if f.WebContentLink != "" {
		return f.WebContentLink
	}
	return "https://drive.google.com/uc?export=view&id=" + f.Id
}
