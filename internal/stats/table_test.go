package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Keyword", "Count"}
	rows := [][]string{
		{"analysis", "12"},
		{"cat", "3"},
	}
	rightAlign := map[int]bool{1: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Keyword  Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "analysis    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "cat          3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := FormatTable([]string{"Word"}, [][]string{{"日本"}, {"ab"}}, nil)
	if lines[2] != "ab  " {
		t.Fatalf("expected padding to display width, got %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := FormatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
