package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining marks, turning "Aïcha" into "Aicha".
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Sanitize lowercases s, strips diacritics and drops every non-alphanumeric rune.
func Sanitize(s string) string {
	s = strings.ToLower(StripDiacritics(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify sanitizes each part and joins the non-empty ones with hyphens.
func Slugify(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := Sanitize(p); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, "-")
}

// Initial returns the uppercased first letter of name after stripping
// diacritics, or an empty string for a blank name.
func Initial(name string) string {
	s := StripDiacritics(strings.TrimSpace(name))
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}
