// ABOUTME: Builds Google Docs batchUpdate requests for display groups
// ABOUTME: Owns the table/text/image offset arithmetic for reverse, fixed-anchor insertion
package render

import (
	"errors"
	"fmt"

	"github.com/harperreed/photodir/config"
	"github.com/harperreed/photodir/models"
	"google.golang.org/api/docs/v1"
)

const (
	tableRows    = 2
	tableColumns = models.GroupSize

	// Distance from a text cell in the second table row to the photo cell above it.
	photoRowOffset = 7
)

var ErrGroupTooLarge = errors.New("display group exceeds table width")

type Style struct {
	HideBorders bool
	FontSize    float64
}

// Builder turns display groups into document requests.
//
// Every group is inserted as a fresh 2x3 table at AnchorIndex. LastCellIndex is
// the index of the last cell of that table right after the insert, so the
// text and image indices of a group are only valid while nothing else has been
// inserted since the group's table. All satisfies this by walking the groups in
// reverse and emitting each group's requests together.
type Builder struct {
	AnchorIndex   int64
	LastCellIndex int64
	ImageSize     float64
	Placeholder   string
	Style         Style
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		AnchorIndex:   cfg.Layout.AnchorIndex,
		LastCellIndex: cfg.Layout.LastCellIndex,
		ImageSize:     cfg.Layout.ImageSize,
		Placeholder:   cfg.PlaceholderURL,
		Style: Style{
			HideBorders: cfg.Layout.HideBorders,
			FontSize:    cfg.Layout.FontSize,
		},
	}
}

// slot is the right-to-left fill factor for member i of an n-member group.
func slot(i, n int) int64 {
	return int64(i + models.GroupSize - n)
}

// TextIndex is the insert index for the text of member i in an n-member group.
func (b *Builder) TextIndex(i, n int) int64 {
	return b.LastCellIndex - 2*slot(i, n)
}

// ImageIndex is the insert index for the photo of member i in an n-member group.
func (b *Builder) ImageIndex(i, n int) int64 {
	return b.LastCellIndex - photoRowOffset - 2*slot(i, n)
}

// Group returns the requests for one display group: the table insert, then
// every member's text, then every member's photo. Style requests never change
// content length and always follow the table insert.
func (b *Builder) Group(g models.DisplayGroup) ([]*docs.Request, error) {
	n := len(g.Members)
	if n > models.GroupSize {
		return nil, fmt.Errorf("%w: team %q has %d members", ErrGroupTooLarge, g.Team, n)
	}

	reqs := []*docs.Request{InsertTable(b.AnchorIndex)}
	if b.Style.HideBorders {
		reqs = append(reqs, hideBorders(b.AnchorIndex+1))
	}

	for i, m := range g.Members {
		text := Text(m)
		if text == "" {
			continue
		}
		at := b.TextIndex(i, n)
		reqs = append(reqs, &docs.Request{
			InsertText: &docs.InsertTextRequest{
				Text:     text,
				Location: &docs.Location{Index: at},
			},
		})
		if b.Style.FontSize > 0 {
			reqs = append(reqs, fontSize(at, at+textLength(text), b.Style.FontSize))
		}
	}

	for i, m := range g.Members {
		uri := m.PhotoURL
		if uri == "" {
			uri = b.Placeholder
		}
		if uri == "" {
			continue
		}
		reqs = append(reqs, &docs.Request{
			InsertInlineImage: &docs.InsertInlineImageRequest{
				Uri:      uri,
				Location: &docs.Location{Index: b.ImageIndex(i, n)},
				ObjectSize: &docs.Size{
					Height: points(b.ImageSize),
					Width:  points(b.ImageSize),
				},
			},
		})
	}

	return reqs, nil
}

// All builds the full batch. Groups are emitted in reverse layout order so that
// inserting every table at the same anchor leaves them in layout order.
func (b *Builder) All(groups []models.DisplayGroup) ([]*docs.Request, error) {
	var reqs []*docs.Request
	for i := len(groups) - 1; i >= 0; i-- {
		gr, err := b.Group(groups[i])
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, gr...)
	}
	return reqs, nil
}

// InsertTable inserts an empty 2x3 table at index.
func InsertTable(index int64) *docs.Request {
	return &docs.Request{
		InsertTable: &docs.InsertTableRequest{
			Rows:     tableRows,
			Columns:  tableColumns,
			Location: &docs.Location{Index: index},
		},
	}
}

// DeleteRange removes content in [start, end).
func DeleteRange(start, end int64) *docs.Request {
	return &docs.Request{
		DeleteContentRange: &docs.DeleteContentRangeRequest{
			Range: &docs.Range{StartIndex: start, EndIndex: end},
		},
	}
}

// DeleteTableRow removes the row containing the given cell of the table at tableStart.
func DeleteTableRow(tableStart, row, column int64) *docs.Request {
	return &docs.Request{
		DeleteTableRow: &docs.DeleteTableRowRequest{
			TableCellLocation: &docs.TableCellLocation{
				TableStartLocation: &docs.Location{Index: tableStart},
				RowIndex:           row,
				ColumnIndex:        column,
			},
		},
	}
}

func points(v float64) *docs.Dimension {
	return &docs.Dimension{Magnitude: v, Unit: "PT", ForceSendFields: []string{"Magnitude"}}
}

func hideBorders(tableStart int64) *docs.Request {
	border := func() *docs.TableCellBorder {
		return &docs.TableCellBorder{
			Color: &docs.OptionalColor{
				Color: &docs.Color{RgbColor: &docs.RgbColor{}},
			},
			DashStyle: "SOLID",
			Width:     points(0),
		}
	}
	return &docs.Request{
		UpdateTableCellStyle: &docs.UpdateTableCellStyleRequest{
			TableCellStyle: &docs.TableCellStyle{
				BorderLeft:   border(),
				BorderRight:  border(),
				BorderTop:    border(),
				BorderBottom: border(),
			},
			Fields:             "borderLeft,borderRight,borderTop,borderBottom",
			TableStartLocation: &docs.Location{Index: tableStart},
		},
	}
}

func fontSize(start, end int64, size float64) *docs.Request {
	return &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     &docs.Range{StartIndex: start, EndIndex: end},
			TextStyle: &docs.TextStyle{FontSize: points(size)},
			Fields:    "fontSize",
		},
	}
}
