// Package stats renders analysis results and saved snapshot history.
package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordlens/internal/model"
)

const sparkChars = " .:-=+*#%@"

const savedAtLayout = "2006-01-02 15:04"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderResult prints the metrics of one analysis as an aligned table.
func RenderResult(w io.Writer, title string, res model.AnalysisResult) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	rows := [][]string{
		{"Words", strconv.Itoa(res.WordCount)},
		{"Characters", strconv.Itoa(res.CharCount)},
		{"Characters (no spaces)", strconv.Itoa(res.CharCountNoSpaces)},
		{"Sentences", strconv.Itoa(res.SentenceCount)},
		{"Paragraphs", strconv.Itoa(res.ParagraphCount)},
		{"Reading time", res.ReadingTime},
		{"Speaking time", res.SpeakingTime},
		{"Readability", fmt.Sprintf("%d (%s)", res.ReadabilityScore, res.ReadabilityLabel)},
	}
	if err := writeLines(w, FormatTable([]string{"Metric", "Value"}, rows, map[int]bool{1: true})); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if len(res.Keywords) == 0 {
		_, err := fmt.Fprintln(w, "No keywords found.")
		return err
	}
	kwRows := make([][]string, len(res.Keywords))
	for i, kw := range res.Keywords {
		kwRows[i] = []string{strconv.Itoa(i + 1), kw.Word, strconv.Itoa(kw.Count)}
	}
	return writeLines(w, FormatTable([]string{"#", "Keyword", "Count"}, kwRows, map[int]bool{0: true, 2: true}))
}

// RenderSummary prints aggregate figures for saved snapshots.
func RenderSummary(w io.Writer, snapshots []model.Snapshot) error {
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(w, "No snapshots found.")
		return err
	}
	var totalWords, totalScore float64
	best := 0
	for _, s := range snapshots {
		totalWords += float64(s.WordCount)
		totalScore += float64(s.ReadabilityScore)
		best = max(best, s.WordCount)
	}
	count := float64(len(snapshots))
	latest := snapshots[len(snapshots)-1]
	lines := []string{
		"Summary",
		fmt.Sprintf("Snapshots: %d", len(snapshots)),
		fmt.Sprintf("Avg Words: %.2f", totalWords/count),
		fmt.Sprintf("Most Words: %d", best),
		fmt.Sprintf("Avg Readability: %.2f", totalScore/count),
		fmt.Sprintf("Latest: %s (%d words)", latest.SavedAt.Local().Format(savedAtLayout), latest.WordCount),
		"",
	}
	return writeLines(w, lines)
}

// RenderTrends prints smoothed sparklines of word count and readability.
func RenderTrends(w io.Writer, snapshots []model.Snapshot, window int) error {
	if len(snapshots) < 2 {
		return nil
	}
	words := make([]float64, len(snapshots))
	scores := make([]float64, len(snapshots))
	for i, s := range snapshots {
		words[i] = float64(s.WordCount)
		scores[i] = float64(s.ReadabilityScore)
	}
	lines := []string{
		fmt.Sprintf("Trends (moving average of %d)", max(window, 1)),
		"Words       " + Sparkline(MovingAverage(words, window)),
		"Readability " + Sparkline(MovingAverage(scores, window)),
		"",
	}
	return writeLines(w, lines)
}

// RenderSnapshotTable prints one row per snapshot.
func RenderSnapshotTable(w io.Writer, snapshots []model.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	headers := []string{"ID", "Saved", "Words", "Chars", "Sentences", "Readability"}
	rows := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.SavedAt.Local().Format(savedAtLayout),
			strconv.Itoa(s.WordCount),
			strconv.Itoa(s.CharCount),
			strconv.Itoa(s.SentenceCount),
			strconv.Itoa(s.ReadabilityScore),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	return writeLines(w, FormatTable(headers, rows, rightAlign))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
