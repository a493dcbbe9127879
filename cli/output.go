// ABOUTME: Terminal rendering for directory previews
// ABOUTME: Draws display groups as a lipgloss table, one row per document table
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/harperreed/photodir/models"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderPreview lays out groups the way they will appear in the document.
// Contacts using the placeholder photo are flagged.
func renderPreview(groups []models.DisplayGroup, placeholder string) string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		row := []string{g.Team}
		for i := 0; i < models.GroupSize; i++ {
			if i >= len(g.Members) {
				row = append(row, "")
				continue
			}
			m := g.Members[i]
			cell := m.Key()
			if m.PhotoURL == "" || m.PhotoURL == placeholder {
				cell += "\n" + missingStyle.Render("(no photo)")
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("TEAM", "SLOT 1", "SLOT 2", "SLOT 3").
		Rows(rows...)

	return t.String()
}

func previewSummary(dir *models.Directory, groups []models.DisplayGroup, placeholder string) string {
	missing := 0
	for _, rec := range dir.Records() {
		if rec.PhotoURL == "" || rec.PhotoURL == placeholder {
			missing++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✓ %d contacts in %d rows\n", dir.Len(), len(groups))
	if missing > 0 {
		fmt.Fprintf(&b, "  → %d contacts without a photo\n", missing)
	}
	return b.String()
}
