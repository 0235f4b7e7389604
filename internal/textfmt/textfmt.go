// Package textfmt implements whole-text formatting commands.
package textfmt

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/wordlens/internal/analyzer"
)

// Case selects a case transform.
type Case string

// Supported case transforms.
const (
	CaseUpper Case = "upper"
	CaseLower Case = "lower"
	CaseTitle Case = "title"
)

var (
	titleWordPattern = regexp.MustCompile(`\w` + analyzer.NonSpaceClass + `*`)
	spaceRunPattern  = regexp.MustCompile(analyzer.SpaceClass + `+`)
)

// Upper converts text to upper case without language-specific rules.
func Upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// Lower converts text to lower case without language-specific rules.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// Title capitalizes every word that starts with a word character and
// lower-cases the rest of it. Words run until the next whitespace, so
// "o'neil" becomes "O'neil".
func Title(text string) string {
	lower := cases.Lower(language.Und)
	return titleWordPattern.ReplaceAllStringFunc(text, func(word string) string {
		_, size := utf8.DecodeRuneInString(word)
		return strings.ToUpper(word[:size]) + lower.String(word[size:])
	})
}

// SqueezeSpaces collapses whitespace runs into one space and trims the ends.
func SqueezeSpaces(text string) string {
	return strings.TrimFunc(spaceRunPattern.ReplaceAllString(text, " "), analyzer.IsSpace)
}

// Apply runs the transform named by c.
func Apply(c Case, text string) (string, bool) {
	switch c {
	case CaseUpper:
		return Upper(text), true
	case CaseLower:
		return Lower(text), true
	case CaseTitle:
		return Title(text), true
	default:
		return text, false
	}
}
