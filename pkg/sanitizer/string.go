package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	blankLinesRegex = regexp.MustCompile(`\n{3,}`)

	// strictPolicy removes every tag and attribute; bluemonday policies are
	// safe for concurrent use once built.
	strictPolicy = bluemonday.StrictPolicy()
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeUnicode converts s to Unicode NFC so visually identical input
// (for example Arabic letters typed with separate diacritics, or "é" typed as
// "e" + combining accent) compares and counts the same.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveExtraWhitespace replaces runs of whitespace, including line breaks,
// with a single space and trims the result.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except line breaks and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeLineBreaks converts CRLF and CR to LF and caps runs of blank lines
// at one.
func NormalizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return blankLinesRegex.ReplaceAllString(s, "\n\n")
}

// StripHTML removes all markup and returns plain text with entities decoded.
func StripHTML(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SingleLine converts a multi-line string to a single line.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(s)
}
