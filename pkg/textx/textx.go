// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
	"unicode"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	// strip control chars outside tab/newline/carriage return
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Excerpt derives a display excerpt from post content: sanitized, whitespace
// collapsed, cut at a word boundary within max runes, with an ellipsis when
// anything was cut. max must be positive.
func Excerpt(content string, max int) string {
	s := strings.Join(strings.Fields(SanitizeText(content)), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	cut := max
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		// One giant word; hard cut.
		cut = max
	}
	return strings.TrimRight(string(runes[:cut]), " ") + "…"
}
