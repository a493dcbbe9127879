// ABOUTME: Composes the text block shown under each contact photo
// ABOUTME: Omits lines whose fields are empty
package render

import (
	"strings"
	"unicode/utf16"

	"github.com/harperreed/photodir/models"
)

// Text renders the cell text for a contact:
//
//	Last, First
//	Team, Role
//	Email:
//	 a@example.com
//	Skype:
//	 handle
//	Phone:
//	 555-1234
func Text(c models.ContactRecord) string {
	var lines []string

	if c.LastName != "" || c.FirstName != "" {
		lines = append(lines, c.Key())
	}
	if tr := joinNonEmpty(", ", c.Team, c.Role); tr != "" {
		lines = append(lines, tr)
	}
	if emails := joinNonEmpty(", ", c.Emails...); emails != "" {
		lines = append(lines, "Email:\n "+emails)
	}
	if c.Skype != "" {
		lines = append(lines, "Skype:\n "+c.Skype)
	}
	if phones := joinNonEmpty(", ", c.Phones...); phones != "" {
		lines = append(lines, "Phone:\n "+phones+"\n")
	}

	return strings.Join(lines, "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// textLength is the length of s in document index units (UTF-16 code units).
func textLength(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}
