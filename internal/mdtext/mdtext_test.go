package mdtext_test

import (
	"testing"

	"github.com/verte-zerg/wordlens/internal/mdtext"
)

func TestPlainText_Document(t *testing.T) {
	src := "# Title\n\nHello *world*.\n\n```go\ncode()\n```\n\n- one\n- two\n"
	got := mdtext.PlainText([]byte(src))
	want := "Title\n\nHello world.\n\none\n\ntwo"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPlainText_Link(t *testing.T) {
	got := mdtext.PlainText([]byte("Click [here](https://example.com) now.\n"))
	if got != "Click here now." {
		t.Errorf("got %q, want %q", got, "Click here now.")
	}
}

func TestPlainText_AutoLink(t *testing.T) {
	got := mdtext.PlainText([]byte("See <https://go.dev> today.\n"))
	if got != "See https://go.dev today." {
		t.Errorf("got %q", got)
	}
}

func TestPlainText_ImageDropped(t *testing.T) {
	got := mdtext.PlainText([]byte("![diagram](a.png) Caption text.\n"))
	if got != "Caption text." {
		t.Errorf("got %q", got)
	}
}

func TestPlainText_SoftBreakKept(t *testing.T) {
	got := mdtext.PlainText([]byte("line one\nline two\n"))
	if got != "line one\nline two" {
		t.Errorf("got %q", got)
	}
}

func TestPlainText_CodeSpanKept(t *testing.T) {
	got := mdtext.PlainText([]byte("Run `go test` now.\n"))
	if got != "Run go test now." {
		t.Errorf("got %q", got)
	}
}

func TestPlainText_Empty(t *testing.T) {
	if got := mdtext.PlainText(nil); got != "" {
		t.Errorf("got %q", got)
	}
}
