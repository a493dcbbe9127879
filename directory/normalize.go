// ABOUTME: Converts raw spreadsheet rows into contact records
// ABOUTME: Pads short rows, skips section headings, resolves photos, and keeps last-write-wins on duplicate keys
package directory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/photodir/config"
	"github.com/harperreed/photodir/models"
	"go.uber.org/zap"
)

var ErrMalformedHeader = errors.New("malformed header row")

type Options struct {
	Columns        config.Columns
	PlaceholderURL string
}

// OptionsFromConfig pulls the normalizer settings out of the run config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Columns:        cfg.Columns,
		PlaceholderURL: cfg.PlaceholderURL,
	}
}

type columnIndex struct {
	team, role, last, first, skype int
	emails, phones                 []int
}

// Normalize builds the contact directory from sheet rows. rows[0] is the header;
// its cells name the attribute at each position of every following row.
//
// Rows shorter than the header are padded with empty cells. A row with a single
// non-empty cell is a section heading and produces no contact. Photo candidates
// are looked up by the contact's "<last>, <first>" key; a contact without any
// gets the placeholder image and a warning.
func Normalize(rows [][]string, photos map[string][]models.PhotoCandidate, opts Options, log *zap.Logger) (*models.Directory, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet has no header row", ErrMalformedHeader)
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	idx, err := resolveColumns(header, opts.Columns)
	if err != nil {
		return nil, err
	}

	dir := models.NewDirectory()
	for n, raw := range rows[1:] {
		row := padRow(raw, len(header))

		switch nonEmptyCells(row) {
		case 0:
			continue
		case 1:
			log.Debug("skipping section heading", zap.Int("row", n+2), zap.String("heading", firstNonEmpty(row)))
			continue
		}

		rec := buildRecord(header, row, idx)
		key := rec.Key()

		rec.Photos = photos[key]
		url, found := SelectPhoto(rec.Photos, opts.PlaceholderURL)
		if !found {
			log.Warn("contact photo missing", zap.String("contact", key))
		}
		rec.PhotoURL = url

		if dir.Set(rec) {
			log.Warn("duplicate contact key", zap.String("contact", key), zap.Int("row", n+2))
		}
	}

	return dir, nil
}

func resolveColumns(header []string, cols config.Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}

	first := func(names []string) int {
		for _, n := range names {
			if i, ok := pos[n]; ok {
				return i
			}
		}
		return -1
	}
	all := func(names []string) []int {
		var out []int
		for _, n := range names {
			if i, ok := pos[n]; ok {
				out = append(out, i)
			}
		}
		return out
	}

	idx := columnIndex{
		team:   first(cols.Team),
		role:   first(cols.Role),
		last:   first(cols.LastName),
		first:  first(cols.FirstName),
		skype:  first(cols.Skype),
		emails: all(cols.Email),
		phones: all(cols.Phone),
	}

	var missing []string
	if idx.team < 0 {
		missing = append(missing, "team")
	}
	if idx.last < 0 {
		missing = append(missing, "last name")
	}
	if idx.first < 0 {
		missing = append(missing, "first name")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %d columns, missing %s", ErrMalformedHeader, len(header), strings.Join(missing, ", "))
	}

	return idx, nil
}

// padRow returns a copy of row trimmed and sized to exactly width cells.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(row); i++ {
		out[i] = strings.TrimSpace(row[i])
	}
	return out
}

func nonEmptyCells(row []string) int {
	n := 0
	for _, cell := range row {
		if cell != "" {
			n++
		}
	}
	return n
}

func firstNonEmpty(row []string) string {
	for _, cell := range row {
		if cell != "" {
			return cell
		}
	}
	return ""
}

func buildRecord(header, row []string, idx columnIndex) models.ContactRecord {
	cell := func(i int) string {
		if i < 0 {
			return ""
		}
		return row[i]
	}
	cells := func(is []int) []string {
		var out []string
		for _, i := range is {
			if row[i] != "" {
				out = append(out, row[i])
			}
		}
		return out
	}

	fields := make(map[string]string, len(header))
	for i, name := range header {
		if name != "" {
			fields[name] = row[i]
		}
	}

	return models.ContactRecord{
		LastName:  cell(idx.last),
		FirstName: cell(idx.first),
		Team:      cell(idx.team),
		Role:      cell(idx.role),
		Emails:    cells(idx.emails),
		Skype:     cell(idx.skype),
		Phones:    cells(idx.phones),
		Fields:    fields,
	}
}
