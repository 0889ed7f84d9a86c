package repository

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matchKey reduces a display string to the form used for record identity:
// surrounding whitespace trimmed, interior runs collapsed to a single
// space, letters case-folded. "  John   Smith " and "john smith" share
// one key.
func matchKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// displayForm is the cosmetic normalization applied once, when a record
// is first created: trimmed, collapsed, title-cased per word. Existing
// records keep the display strings they were created with.
func displayForm(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	return cases.Title(language.English).String(collapsed)
}
