package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordlens/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestRenderResult(t *testing.T) {
	res := model.AnalysisResult{
		WordCount:        3,
		ReadingTime:      "1s",
		SpeakingTime:     "2s",
		ReadabilityScore: 90,
		ReadabilityLabel: "Very Easy",
		Keywords:         []model.Keyword{{Word: "cats", Count: 2}},
	}
	var buf bytes.Buffer
	if err := RenderResult(&buf, "notes.txt", res); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"notes.txt\n", "90 (Very Easy)", "cats", "Keyword"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderResultNoKeywords(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderResult(&buf, "", model.AnalysisResult{ReadabilityLabel: "N/A"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No keywords found.") {
		t.Fatalf("expected no keywords line:\n%s", buf.String())
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No snapshots found.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderTrendsNeedsTwoSnapshots(t *testing.T) {
	var buf bytes.Buffer
	snaps := []model.Snapshot{{ID: 1, SavedAt: time.Unix(0, 0), WordCount: 5}}
	if err := RenderTrends(&buf, snaps, 3); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no trends for one snapshot, got %q", buf.String())
	}
}
