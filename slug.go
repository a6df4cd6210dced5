package tripkml

import (
	"strings"
	"unicode"
)

// Slugify makes a file-name-safe base name from a trip title.
// Every rune other than a letter, number, underscore or hyphen is replaced
// with an underscore, one for one, and the result is lower-cased.
func Slugify(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))

	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}

	return strings.ToLower(sb.String())
}
