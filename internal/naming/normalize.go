package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugRe  = regexp.MustCompile(`[^a-z0-9]+`)
	nonIdentRe = regexp.MustCompile(`[^A-Za-z0-9]+`)
	slugRe     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify normalizes a label into an identifier-safe slug.
// The normalization pipeline:
// 1. Decompose (NFKD) and drop everything outside ASCII, so accents fall away.
// 2. Case-fold to lower.
// 3. Replace every run of characters outside [a-z0-9] with a single hyphen.
// 4. Trim leading and trailing hyphens.
//
// Slugify is idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.ToLower(stripNonASCII(s))
	s = nonSlugRe.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// IsSlug reports whether s is a non-empty slug as produced by Slugify.
func IsSlug(s string) bool {
	return slugRe.MatchString(s)
}

// stripNonASCII decomposes s into NFKD form and keeps only ASCII runes.
// Base letters survive decomposition, combining marks and other scripts do not.
func stripNonASCII(s string) string {
	decomposed := norm.NFKD.String(s)

	var result strings.Builder

	result.Grow(len(decomposed))

	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}

// DisplayName derives a notebook display name from a file path.
// Examples:
//   - "survey-2021.json" -> "Survey 2021"
//   - "/data/blue-mountains-sites.json" -> "Blue Mountains Sites"
func DisplayName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "-", " ")

	return cases.Title(language.English).String(base)
}

// FileIdent collapses every run of non-alphanumeric characters into an underscore.
// Example: "Oral History" -> "Oral_History".
func FileIdent(name string) string {
	return nonIdentRe.ReplaceAllString(name, "_")
}
