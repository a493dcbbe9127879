// ABOUTME: Photo candidate grouping and selection
// ABOUTME: Maps Drive filenames to contact keys and picks the largest image per contact
package directory

import (
	"strings"

	"github.com/harperreed/photodir/models"
)

// PhotoKey derives the contact key from a photo filename: the text before the
// first "." and before the first "_". "Smith, Alice_2.jpg" -> "Smith, Alice".
func PhotoKey(filename string) string {
	name, _, _ := strings.Cut(filename, ".")
	name, _, _ = strings.Cut(name, "_")
	return strings.TrimSpace(name)
}

// GroupPhotos buckets files by PhotoKey, keeping listing order within a bucket.
func GroupPhotos(files []models.PhotoCandidate) map[string][]models.PhotoCandidate {
	out := make(map[string][]models.PhotoCandidate)
	for _, f := range files {
		key := PhotoKey(f.Name)
		if key == "" {
			continue
		}
		out[key] = append(out[key], f)
	}
	return out
}

// SelectPhoto returns the URL of the largest candidate. Equal sizes resolve to
// the one seen last. With no candidates it returns placeholder and false.
func SelectPhoto(candidates []models.PhotoCandidate, placeholder string) (string, bool) {
	if len(candidates) == 0 {
		return placeholder, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Size >= best.Size {
			best = c
		}
	}
	return best.URL, true
}
