package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/harperreed/photodir/config"
	"github.com/harperreed/photodir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"
)

func testBuilder() *Builder {
	return &Builder{
		AnchorIndex:   1,
		LastCellIndex: 16,
		ImageSize:     140,
		Placeholder:   "https://example.com/placeholder.png",
	}
}

func member(last, first string) models.ContactRecord {
	return models.ContactRecord{
		LastName:  last,
		FirstName: first,
		Team:      "Admin",
		PhotoURL:  "https://example.com/" + last + ".jpg",
	}
}

func TestTextIndexFullGroup(t *testing.T) {
	b := testBuilder()
	assert.Equal(t, []int64{16, 14, 12}, []int64{b.TextIndex(0, 3), b.TextIndex(1, 3), b.TextIndex(2, 3)})
	assert.Equal(t, []int64{9, 7, 5}, []int64{b.ImageIndex(0, 3), b.ImageIndex(1, 3), b.ImageIndex(2, 3)})
}

func TestIndexPartialGroups(t *testing.T) {
	b := testBuilder()

	tests := []struct {
		n      int
		text   []int64
		images []int64
	}{
		{1, []int64{12}, []int64{5}},
		{2, []int64{14, 12}, []int64{7, 5}},
	}

	for _, tt := range tests {
		var text, images []int64
		for i := 0; i < tt.n; i++ {
			text = append(text, b.TextIndex(i, tt.n))
			images = append(images, b.ImageIndex(i, tt.n))
		}
		assert.Equal(t, tt.text, text, "text indices for n=%d", tt.n)
		assert.Equal(t, tt.images, images, "image indices for n=%d", tt.n)
	}
}

func TestGroupRequestOrder(t *testing.T) {
	b := testBuilder()
	g := models.DisplayGroup{Team: "Admin", Members: []models.ContactRecord{
		member("Smith", "Alice"),
		member("Jones", "Bob"),
	}}

	reqs, err := b.Group(g)
	require.NoError(t, err)
	require.Len(t, reqs, 5)

	require.NotNil(t, reqs[0].InsertTable)
	assert.Equal(t, int64(2), reqs[0].InsertTable.Rows)
	assert.Equal(t, int64(3), reqs[0].InsertTable.Columns)
	assert.Equal(t, int64(1), reqs[0].InsertTable.Location.Index)

	require.NotNil(t, reqs[1].InsertText)
	assert.Equal(t, int64(14), reqs[1].InsertText.Location.Index)
	assert.Equal(t, "Smith, Alice\nAdmin", reqs[1].InsertText.Text)
	require.NotNil(t, reqs[2].InsertText)
	assert.Equal(t, int64(12), reqs[2].InsertText.Location.Index)

	require.NotNil(t, reqs[3].InsertInlineImage)
	assert.Equal(t, int64(7), reqs[3].InsertInlineImage.Location.Index)
	assert.Equal(t, "https://example.com/Smith.jpg", reqs[3].InsertInlineImage.Uri)
	assert.Equal(t, float64(140), reqs[3].InsertInlineImage.ObjectSize.Width.Magnitude)
	assert.Equal(t, "PT", reqs[3].InsertInlineImage.ObjectSize.Height.Unit)
	require.NotNil(t, reqs[4].InsertInlineImage)
	assert.Equal(t, int64(5), reqs[4].InsertInlineImage.Location.Index)
}

func TestGroupUsesPlaceholderWhenPhotoUnset(t *testing.T) {
	b := testBuilder()
	m := member("Smith", "Alice")
	m.PhotoURL = ""

	reqs, err := b.Group(models.DisplayGroup{Team: "Admin", Members: []models.ContactRecord{m}})
	require.NoError(t, err)

	last := reqs[len(reqs)-1]
	require.NotNil(t, last.InsertInlineImage)
	assert.Equal(t, b.Placeholder, last.InsertInlineImage.Uri)
}

func TestGroupTooLarge(t *testing.T) {
	b := testBuilder()
	g := models.DisplayGroup{Team: "Ops", Members: []models.ContactRecord{
		member("A", "a"), member("B", "b"), member("C", "c"), member("D", "d"),
	}}

	_, err := b.Group(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGroupTooLarge))
}

func TestGroupStyleRequestsFollowTableInsert(t *testing.T) {
	b := testBuilder()
	b.Style = Style{HideBorders: true, FontSize: 9}
	g := models.DisplayGroup{Team: "Admin", Members: []models.ContactRecord{member("Smith", "Alice")}}

	reqs, err := b.Group(g)
	require.NoError(t, err)

	require.NotNil(t, reqs[0].InsertTable)
	require.NotNil(t, reqs[1].UpdateTableCellStyle)
	assert.Equal(t, int64(2), reqs[1].UpdateTableCellStyle.TableStartLocation.Index)

	require.NotNil(t, reqs[2].InsertText)
	require.NotNil(t, reqs[3].UpdateTextStyle)
	text := reqs[2].InsertText
	style := reqs[3].UpdateTextStyle
	assert.Equal(t, text.Location.Index, style.Range.StartIndex)
	assert.Equal(t, text.Location.Index+int64(len(text.Text)), style.Range.EndIndex)
	assert.Equal(t, float64(9), style.TextStyle.FontSize.Magnitude)

	require.NotNil(t, reqs[4].InsertInlineImage)
	assert.Equal(t, int64(5), reqs[4].InsertInlineImage.Location.Index)
}

func TestAllProcessesGroupsInReverse(t *testing.T) {
	b := testBuilder()
	groups := []models.DisplayGroup{
		{Team: "Admin", Members: []models.ContactRecord{member("Smith", "Alice"), member("Jones", "Bob")}},
		{Team: "Finance", Members: []models.ContactRecord{member("Lee", "Cy")}},
	}

	reqs, err := b.All(groups)
	require.NoError(t, err)

	var tables []int
	var texts []string
	for i, r := range reqs {
		if r.InsertTable != nil {
			tables = append(tables, i)
			assert.Equal(t, int64(1), r.InsertTable.Location.Index)
		}
		if r.InsertText != nil {
			texts = append(texts, r.InsertText.Text)
		}
	}

	assert.Equal(t, []int{0, 3}, tables)
	expected := []string{"Lee, Cy\nAdmin", "Smith, Alice\nAdmin", "Jones, Bob\nAdmin"}
	if diff := cmp.Diff(expected, texts); diff != "" {
		t.Errorf("text order mismatch (-want +got):\n%s", diff)
	}
}

func TestAllEmpty(t *testing.T) {
	reqs, err := testBuilder().All(nil)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestNewBuilderFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.HideBorders = true

	b := NewBuilder(cfg)
	assert.Equal(t, int64(1), b.AnchorIndex)
	assert.Equal(t, int64(16), b.LastCellIndex)
	assert.Equal(t, float64(140), b.ImageSize)
	assert.True(t, b.Style.HideBorders)
	assert.Equal(t, config.DefaultPlaceholderURL, b.Placeholder)
}

func TestMaintenanceRequests(t *testing.T) {
	del := DeleteRange(1, 41)
	require.NotNil(t, del.DeleteContentRange)
	assert.Equal(t, &docs.Range{StartIndex: 1, EndIndex: 41}, del.DeleteContentRange.Range)

	row := DeleteTableRow(2, 1, 0)
	require.NotNil(t, row.DeleteTableRow)
	assert.Equal(t, int64(2), row.DeleteTableRow.TableCellLocation.TableStartLocation.Index)
	assert.Equal(t, int64(1), row.DeleteTableRow.TableCellLocation.RowIndex)
}
