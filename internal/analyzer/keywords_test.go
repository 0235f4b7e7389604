package analyzer

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/verte-zerg/wordlens/internal/model"
)

func TestExtractKeywordsCounts(t *testing.T) {
	got := Analyze("cat cat cat dog dog").Keywords
	want := []model.Keyword{{Word: "cat", Count: 3}, {Word: "dog", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractKeywordsFiltersStopWordsAndShortTokens(t *testing.T) {
	words := []string{"The", "THE", "an", "is", "it", "go", "Those", "could", "Gopher", "gopher!"}
	got := ExtractKeywords(words)
	want := []model.Keyword{{Word: "gopher", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractKeywordsTiesKeepFirstSeenOrder(t *testing.T) {
	got := ExtractKeywords([]string{"zebra", "apple", "mango", "apple", "zebra", "kiwi"})
	want := []model.Keyword{
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "mango", Count: 1},
		{Word: "kiwi", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractKeywordsLimit(t *testing.T) {
	var words []string
	for i := 0; i < 25; i++ {
		words = append(words, fmt.Sprintf("word%02d", i))
	}
	got := ExtractKeywords(words)
	if len(got) != KeywordLimit {
		t.Fatalf("expected %d keywords, got %d", KeywordLimit, len(got))
	}
	if got[0].Word != "word00" || got[9].Word != "word09" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestExtractKeywordsAllFiltered(t *testing.T) {
	got := ExtractKeywords([]string{"the", "a", "of", "by"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
	if got := ExtractKeywords(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list for no words, got %#v", got)
	}
}

func TestKeywordsNeverContainStopWords(t *testing.T) {
	stop := map[string]bool{}
	for _, w := range StopWords {
		stop[w] = true
	}
	got := Analyze("This would have been the best of those days, and these were the days that did matter.").Keywords
	for _, kw := range got {
		if stop[kw.Word] || len(kw.Word) <= 2 {
			t.Fatalf("unexpected keyword %q", kw.Word)
		}
	}
}

func TestStopWordListSize(t *testing.T) {
	if len(StopWords) != 38 {
		t.Fatalf("expected 38 stop words, got %d", len(StopWords))
	}
}
