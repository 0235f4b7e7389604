// Package wordlist loads word lists such as extra stop words from files.
package wordlist

import "strings"

// Normalize lower-cases word and reports whether it can ever match a
// keyword token: only ASCII letters, digits and underscores survive keyword
// cleaning, so anything else would never be filtered.
func Normalize(word string) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if !isWordByte(ch) {
			return "", false
		}
	}
	return word, true
}

func isWordByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_'
}
