package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wordlens/internal/analyzer"
	"github.com/verte-zerg/wordlens/internal/model"
	"github.com/verte-zerg/wordlens/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "wordlens.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	texts := []string{"One.", "One two.", "One two three."}
	var ids []int64
	for _, text := range texts {
		id, err := st.SaveDraftWithSnapshot(ctx, text, analyzer.Analyze(text))
		if err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
		ids = append(ids, id)
	}

	report, err := BuildReport(ctx, st, model.HistoryConfig{Last: 2, Window: 5})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(report.Snapshots))
	}
	if report.Snapshots[0].ID != ids[1] || report.Snapshots[1].ID != ids[2] {
		t.Fatalf("unexpected snapshot ids: %+v", report.Snapshots)
	}
	if report.Window != 2 {
		t.Fatalf("expected window clamped to 2, got %d", report.Window)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Snapshots: 2", "Most Words: 3", "Trends (moving average of 2)", "Readability"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
