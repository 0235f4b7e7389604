package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/wordlens/internal/model"
)

func TestAnalyzeGreeting(t *testing.T) {
	res := Analyze("Hello world. This is great!")
	if res.WordCount != 5 {
		t.Fatalf("expected 5 words, got %d", res.WordCount)
	}
	if res.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", res.SentenceCount)
	}
	if res.ParagraphCount != 1 {
		t.Fatalf("expected 1 paragraph, got %d", res.ParagraphCount)
	}
	if res.CharCount != 27 {
		t.Fatalf("expected 27 chars, got %d", res.CharCount)
	}
	if res.CharCountNoSpaces != 23 {
		t.Fatalf("expected 23 chars without spaces, got %d", res.CharCountNoSpaces)
	}
	if res.ReadingTime != "2s" || res.SpeakingTime != "2s" {
		t.Fatalf("unexpected times: %q %q", res.ReadingTime, res.SpeakingTime)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n\t"} {
		res := Analyze(text)
		if res.WordCount != 0 || res.SentenceCount != 0 || res.ParagraphCount != 0 {
			t.Fatalf("%q: expected zero counts, got %+v", text, res)
		}
		if res.ReadabilityScore != 0 || res.ReadabilityLabel != LabelNotAvailable {
			t.Fatalf("%q: expected 0/N/A, got %d/%s", text, res.ReadabilityScore, res.ReadabilityLabel)
		}
		if res.Keywords == nil || len(res.Keywords) != 0 {
			t.Fatalf("%q: expected empty keyword list, got %#v", text, res.Keywords)
		}
		if res.ReadingTime != "0s" {
			t.Fatalf("%q: expected 0s reading time, got %q", text, res.ReadingTime)
		}
	}
}

func TestAnalyzeWhitespaceOnlyCountsChars(t *testing.T) {
	res := Analyze(" \n ")
	if res.CharCount != 3 {
		t.Fatalf("expected 3 chars, got %d", res.CharCount)
	}
	if res.CharCountNoSpaces != 0 {
		t.Fatalf("expected 0 chars without spaces, got %d", res.CharCountNoSpaces)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. The dog sleeps!\n\nFox again?"
	first := Analyze(text)
	second := Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"...",
		"no punctuation at all",
		"emoji 😀 counts twice",
		"tabs\tand nbsp\u00a0wide\u3000end",
		"the the the and and",
		strings.Repeat("word ", 500),
		"x_y 123 __ 4.5!?",
	}
	for _, text := range inputs {
		res := Analyze(text)
		if res.WordCount < 0 || res.CharCount < 0 || res.CharCountNoSpaces < 0 ||
			res.SentenceCount < 0 || res.ParagraphCount < 0 || res.ReadabilityScore < 0 {
			t.Fatalf("%q: negative field in %+v", text, res)
		}
		if res.CharCountNoSpaces > res.CharCount {
			t.Fatalf("%q: no-space count %d exceeds count %d", text, res.CharCountNoSpaces, res.CharCount)
		}
		if trimSpace(text) == "" && res.WordCount != 0 {
			t.Fatalf("%q: expected no words, got %d", text, res.WordCount)
		}
		if wordPattern.MatchString(text) && res.WordCount == 0 {
			t.Fatalf("%q: expected words, got none", text)
		}
		if len(res.Keywords) > KeywordLimit {
			t.Fatalf("%q: %d keywords exceeds limit", text, len(res.Keywords))
		}
	}
}

func TestAnalyzeSurrogatePairs(t *testing.T) {
	res := Analyze("😀")
	if res.CharCount != 2 || res.CharCountNoSpaces != 2 {
		t.Fatalf("expected 2 UTF-16 units, got %d/%d", res.CharCount, res.CharCountNoSpaces)
	}
}

func TestAnalyzerOptions(t *testing.T) {
	a := New(Options{KeywordLimit: 1, ExtraStopWords: []string{" Cat "}, ReadingWPM: 30})
	res := a.Analyze("cat cat cat dog dog bird")
	want := []model.Keyword{{Word: "dog", Count: 2}}
	if !reflect.DeepEqual(res.Keywords, want) {
		t.Fatalf("expected %v, got %v", want, res.Keywords)
	}
	if res.ReadingTime != "12s" {
		t.Fatalf("expected 12s reading time at 30 wpm, got %q", res.ReadingTime)
	}
	if res.SpeakingTime != "3s" {
		t.Fatalf("expected default speaking rate, got %q", res.SpeakingTime)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	opts := New(Options{}).Options()
	if opts.ReadingWPM != ReadingWPM || opts.SpeakingWPM != SpeakingWPM || opts.KeywordLimit != KeywordLimit {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}
