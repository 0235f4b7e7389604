package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/verte-zerg/wordlens/internal/model"
)

// KeywordLimit is the number of keywords reported.
const KeywordLimit = 10

// MinKeywordLength is the shortest cleaned token counted as a keyword.
const MinKeywordLength = 3

// StopWords are common function words excluded from keyword ranking.
var StopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "is", "are", "was", "were", "be", "been",
	"have", "has", "had", "do", "does", "did", "will", "would", "could", "should",
	"may", "might", "must", "can", "this", "that", "these", "those",
}

var nonWordPattern = regexp.MustCompile(`\W`)

// ExtractKeywords ranks the significant words using the default stop words
// and limit.
func ExtractKeywords(words []string) []model.Keyword {
	return defaultAnalyzer.Keywords(words)
}

// Keywords ranks words by frequency after lower-casing, stripping non-word
// characters and dropping short tokens and stop words. Equal counts keep
// first-seen order.
func (a *Analyzer) Keywords(words []string) []model.Keyword {
	if len(words) == 0 {
		return []model.Keyword{}
	}
	index := map[string]int{}
	ranked := []model.Keyword{}
	for _, word := range words {
		clean := nonWordPattern.ReplaceAllString(strings.ToLower(word), "")
		if len(clean) < MinKeywordLength {
			continue
		}
		if _, stop := a.stopWords[clean]; stop {
			continue
		}
		if i, ok := index[clean]; ok {
			ranked[i].Count++
			continue
		}
		index[clean] = len(ranked)
		ranked = append(ranked, model.Keyword{Word: clean, Count: 1})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > a.opts.KeywordLimit {
		ranked = ranked[:a.opts.KeywordLimit]
	}
	return ranked
}
