package analyzer

import (
	"regexp"
	"strings"
)

var (
	letterRunPattern = regexp.MustCompile(`[a-z]+`)
	vowelRunPattern  = regexp.MustCompile(`[aeiouy]+`)
)

// EstimateSyllables approximates the number of syllables in text by counting
// vowel groups in every run of ASCII letters, with at least one per run.
//
// This tokenization is deliberately looser than Tokenize: digits and
// underscores split letter runs here, and readability is calibrated on it.
func EstimateSyllables(text string) int {
	total := 0
	for _, word := range letterRunPattern.FindAllString(strings.ToLower(text), -1) {
		total += max(1, len(vowelRunPattern.FindAllStringIndex(word, -1)))
	}
	return total
}
