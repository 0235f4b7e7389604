package analyzer

import "strings"

const spaceChars = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Regexp classes for the ECMAScript \s set, which is wider than RE2's \s.
const (
	SpaceClass    = `[` + spaceChars + `]`
	NonSpaceClass = `[^` + spaceChars + `]`
)

// IsSpace reports whether r belongs to the ECMAScript whitespace set.
// unicode.IsSpace is close but accepts U+0085 and rejects U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
