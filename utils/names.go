// utils/names.go
package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeDisplayName collapses whitespace and title-cases a player name as
// entered on the sign-up sheet ("  annika   SØRENSEN " -> "Annika Sørensen").
func NormalizeDisplayName(name string) string {
	trimmed := strings.Join(strings.Fields(name), " ")
	if trimmed == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(trimmed))
}
