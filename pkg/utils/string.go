// Package utils provides small string helpers shared across the converter.
package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWhitespace replaces runs of whitespace with a single space and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateString truncates a string to maxLength runes, appending "..."
// when anything was cut.
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength]) + "..."
}

// SplitTags splits a comma-separated Shopify tag field into trimmed,
// non-empty tags.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}

	var tags []string

	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// Slugify converts a product title into a URL-safe handle: lowercase,
// accents stripped, any other non-alphanumeric run collapsed to a single
// hyphen.
func Slugify(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder

	lastHyphen := true // suppress leading hyphens

	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining marks left over from decomposition
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)

			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')

				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
