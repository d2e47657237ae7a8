package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var titleCaser = cases.Title(language.Und)

// Trim removes leading and trailing whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// Lower converts a string to lowercase.
func Lower(s string) string { return strings.ToLower(s) }

// Upper converts a string to uppercase.
func Upper(s string) string { return strings.ToUpper(s) }

// Title converts a string to title case using Unicode casing rules.
func Title(s string) string { return titleCaser.String(s) }

// Normalize applies Unicode NFC normalization, composing decomposed
// sequences into their canonical form.
func Normalize(s string) string { return norm.NFC.String(s) }

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl removes control characters, keeping tabs and newlines.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// words splits on any non-alphanumeric boundary, lowercasing each word.
func words(s string) []string {
	split := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range split {
		split[i] = strings.ToLower(w)
	}
	return split
}

// Snake converts a string to snake_case.
func Snake(s string) string { return strings.Join(words(s), "_") }

// Kebab converts a string to kebab-case.
func Kebab(s string) string { return strings.Join(words(s), "-") }

// Camel converts a string to camelCase.
func Camel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(ws[0])
	for _, w := range ws[1:] {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}
