// Package analyzer derives text statistics: counts, reading and speaking
// time, a readability score and keyword frequencies.
//
// Every function in this package is pure. Results depend only on the input
// text and the Options the Analyzer was built with.
package analyzer

import (
	"strings"

	"github.com/verte-zerg/wordlens/internal/model"
)

// Options tunes an Analyzer. Zero values fall back to the defaults.
type Options struct {
	ReadingWPM     float64
	SpeakingWPM    float64
	KeywordLimit   int
	ExtraStopWords []string
}

// DefaultOptions returns the options used by the package-level Analyze.
func DefaultOptions() Options {
	return Options{
		ReadingWPM:   ReadingWPM,
		SpeakingWPM:  SpeakingWPM,
		KeywordLimit: KeywordLimit,
	}
}

// Analyzer computes AnalysisResults. It holds no mutable state and is safe
// for concurrent use.
type Analyzer struct {
	opts      Options
	stopWords map[string]struct{}
}

var defaultAnalyzer = New(DefaultOptions())

// New builds an Analyzer from opts.
func New(opts Options) *Analyzer {
	if opts.ReadingWPM <= 0 {
		opts.ReadingWPM = ReadingWPM
	}
	if opts.SpeakingWPM <= 0 {
		opts.SpeakingWPM = SpeakingWPM
	}
	if opts.KeywordLimit <= 0 {
		opts.KeywordLimit = KeywordLimit
	}
	stop := make(map[string]struct{}, len(StopWords)+len(opts.ExtraStopWords))
	for _, w := range StopWords {
		stop[w] = struct{}{}
	}
	for _, w := range opts.ExtraStopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Analyzer{opts: opts, stopWords: stop}
}

// Options returns the normalized options of the analyzer.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze computes every metric for text using the default options.
func Analyze(text string) model.AnalysisResult {
	return defaultAnalyzer.Analyze(text)
}

// Analyze computes every metric for text.
func (a *Analyzer) Analyze(text string) model.AnalysisResult {
	tokens := Tokenize(text)
	wordCount := len(tokens.Words)
	sentenceCount := len(tokens.Sentences)
	readability := Score(text, wordCount, sentenceCount)

	return model.AnalysisResult{
		WordCount:         wordCount,
		CharCount:         CountChars(text),
		CharCountNoSpaces: CountCharsNoSpaces(text),
		SentenceCount:     sentenceCount,
		ParagraphCount:    tokens.ParagraphCount(),
		ReadingTime:       FormatDuration(float64(wordCount) / a.opts.ReadingWPM),
		SpeakingTime:      FormatDuration(float64(wordCount) / a.opts.SpeakingWPM),
		ReadabilityScore:  readability.Score,
		ReadabilityLabel:  readability.Label,
		Keywords:          a.Keywords(tokens.Words),
	}
}
