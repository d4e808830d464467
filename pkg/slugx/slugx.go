// Package slugx derives URL slugs for posts, categories, and tags. All
// services derive slugs through this package so the uniqueness-suffix scheme
// stays consistent with the relational unique indexes.
package slugx

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxLen bounds generated slugs; relational slug columns are VARCHAR(160).
const MaxLen = 160

// Make converts a title into a lowercase hyphenated slug: letters and digits
// survive, runs of anything else collapse to a single hyphen, and the result
// is trimmed to MaxLen without leaving a trailing hyphen.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	return s
}

// WithSuffix appends a numeric disambiguation suffix, keeping the combined
// length within MaxLen. Services use it when an insert trips the unique slug
// index: retry with WithSuffix(slug, 2), then 3, and so on.
func WithSuffix(slug string, n int) string {
	suffix := "-" + strconv.Itoa(n)
	if len(slug)+len(suffix) > MaxLen {
		slug = strings.TrimRight(slug[:MaxLen-len(suffix)], "-")
	}
	return slug + suffix
}

// IsValid reports whether s already is a well-formed slug (non-empty,
// lowercase alphanumerics and single hyphens, no edge hyphens).
func IsValid(s string) bool {
	if s == "" || len(s) > MaxLen {
		return false
	}
	return s == Make(s)
}
