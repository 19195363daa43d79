package match

import (
	"strings"
	"unicode"
)

// Normalize folds a name for fuzzy matching: case-fold to lower and drop
// everything that is not a letter or digit, so "Interview_Location",
// "interview location" and "InterviewLocation" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
