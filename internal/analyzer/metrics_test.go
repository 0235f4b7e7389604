package analyzer

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes float64
		want    string
	}{
		{0, "0s"},
		{30.0 / 200, "9s"},
		{1.0 / 200, "1s"},
		{0.999, "60s"},
		{1, "1m"},
		{250.0 / 200, "2m"},
		{59.2, "60m"},
		{60, "1h 0m"},
		{61.5, "1h 2m"},
		{150, "2h 30m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Fatalf("FormatDuration(%v): expected %q, got %q", tc.minutes, tc.want, got)
		}
	}
}

func TestReadingAndSpeakingTime(t *testing.T) {
	if got := ReadingTime(30); got != "9s" {
		t.Fatalf("expected 9s, got %q", got)
	}
	if got := ReadingTime(250); got != "2m" {
		t.Fatalf("expected 2m, got %q", got)
	}
	if got := SpeakingTime(300); got != "2m" {
		t.Fatalf("expected 2m, got %q", got)
	}
	if got := ReadingTime(12500); got != "1h 3m" {
		t.Fatalf("expected 1h 3m, got %q", got)
	}
}

func TestCountChars(t *testing.T) {
	text := "a b\tc\n d\ufeff\U0001F600"
	if got := CountChars(text); got != 11 {
		t.Fatalf("expected 11 code units, got %d", got)
	}
	if got := CountCharsNoSpaces(text); got != 6 {
		t.Fatalf("expected 6 code units without spaces, got %d", got)
	}
}

func TestCountCharsKeepsNextLine(t *testing.T) {
	if got := CountCharsNoSpaces("a\u0085b"); got != 3 {
		t.Fatalf("expected U+0085 to count as a character, got %d", got)
	}
}
