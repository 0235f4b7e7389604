package wordlist

import "testing"

func TestNormalize(t *testing.T) {
	if got, ok := Normalize("  Hello "); !ok || got != "hello" {
		t.Fatalf("expected hello, got %q (%v)", got, ok)
	}
	if got, ok := Normalize("snake_case2"); !ok || got != "snake_case2" {
		t.Fatalf("expected snake_case2, got %q (%v)", got, ok)
	}
	for _, word := range []string{"", "résumé", "don’t", "co-op", "two words"} {
		if _, ok := Normalize(word); ok {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
