package clipboard

import (
	"errors"
	"testing"
)

type failing struct{}

func (failing) ReadAll() (string, error) { return "", errors.New("boom") }
func (failing) WriteAll(string) error    { return errors.New("boom") }

func TestCopyRejectsBlank(t *testing.T) {
	mem := &Memory{}
	if err := Copy(mem, " \n"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := Copy(mem, "draft"); err != nil {
		t.Fatalf("copy: %v", err)
	}
	got, err := Paste(mem)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	if got != "draft" {
		t.Fatalf("expected draft, got %q", got)
	}
}

func TestBlankUsesTextWhitespace(t *testing.T) {
	mem := &Memory{}
	if err := Copy(mem, "\ufeff"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for BOM-only text, got %v", err)
	}
	mem.text = "\ufeff\u00a0"
	if _, err := Paste(mem); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for invisible clipboard text, got %v", err)
	}
}

func TestPasteEmpty(t *testing.T) {
	if _, err := Paste(&Memory{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestPastePropagatesErrors(t *testing.T) {
	if _, err := Paste(failing{}); err == nil || errors.Is(err, ErrEmpty) {
		t.Fatalf("expected read error, got %v", err)
	}
	if err := Copy(failing{}, "x"); err == nil {
		t.Fatalf("expected write error")
	}
}
