// Package naming converts manifest-style names to C# identifier casing.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s on every character that cannot appear in an identifier.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Pascal converts "user_name" or "user-name" to "UserName". Letters after
// the first of each word keep their case, so "userID" becomes "UserID".
func Pascal(s string) string {
	// Casers are stateful; one per call keeps this safe for concurrent use.
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Camel is Pascal with a lowercase first letter.
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return p
	}
	r, size := utf8.DecodeRuneInString(p)
	return string(unicode.ToLower(r)) + p[size:]
}
