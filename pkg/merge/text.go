package merge

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold is the case-insensitive comparison key of a value.
func fold(s string) string {
	return cases.Fold().String(s)
}

// capitalize upper-cases the first letter and leaves the rest untouched, so
// "x-ray vision" becomes "X-ray vision" and "ESP" stays "ESP".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(string(r)) + s[size:]
}
