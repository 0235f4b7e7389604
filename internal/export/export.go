// Package export writes texts and analysis reports to files.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/verte-zerg/wordlens/internal/analyzer"
	"github.com/verte-zerg/wordlens/internal/model"
)

// Format selects what an export contains.
type Format string

// Export formats.
const (
	FormatText   Format = "text"
	FormatReport Format = "report"
)

// DefaultWidth is the report wrap width when none is configured.
const DefaultWidth = 80

const zstdExt = ".zst"

// ErrEmptyText is returned when there is nothing to export.
var ErrEmptyText = errors.New("no text to export")

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatText, FormatReport:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want text or report)", value)
	}
}

// FileName returns the default file name for an export format.
func FileName(format Format) string {
	if format == FormatReport {
		return "text-analysis-report.txt"
	}
	return "text-analysis.txt"
}

// WriteText writes the raw text.
func WriteText(w io.Writer, text string) error {
	if strings.TrimFunc(text, analyzer.IsSpace) == "" {
		return ErrEmptyText
	}
	_, err := io.WriteString(w, text)
	return err
}

// WriteReport writes the statistics of res followed by text wrapped to width
// display columns.
func WriteReport(w io.Writer, text string, res model.AnalysisResult, width int) error {
	if strings.TrimFunc(text, analyzer.IsSpace) == "" {
		return ErrEmptyText
	}
	if width <= 0 {
		width = DefaultWidth
	}
	bw := bufio.NewWriter(w)
	lines := append([]string{"Text Analysis Report", ""}, StatLines(res)...)
	lines = append(lines, "", "Content:", Wrap(text, width))
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StatLines renders the headline metrics one per line.
func StatLines(res model.AnalysisResult) []string {
	return []string{
		fmt.Sprintf("Words: %d", res.WordCount),
		fmt.Sprintf("Characters (with spaces): %d", res.CharCount),
		fmt.Sprintf("Characters (no spaces): %d", res.CharCountNoSpaces),
		fmt.Sprintf("Sentences: %d", res.SentenceCount),
		fmt.Sprintf("Paragraphs: %d", res.ParagraphCount),
		fmt.Sprintf("Reading Time: %s", res.ReadingTime),
		fmt.Sprintf("Speaking Time: %s", res.SpeakingTime),
		fmt.Sprintf("Readability Score: %d (%s)", res.ReadabilityScore, res.ReadabilityLabel),
		"Keywords: " + KeywordSummary(res.Keywords),
	}
}

// KeywordSummary renders keywords as "word (n), ...".
func KeywordSummary(keywords []model.Keyword) string {
	if len(keywords) == 0 {
		return "No keywords found"
	}
	parts := make([]string, len(keywords))
	for i, kw := range keywords {
		parts[i] = fmt.Sprintf("%s (%d)", kw.Word, kw.Count)
	}
	return strings.Join(parts, ", ")
}

// Write renders format to w.
func Write(w io.Writer, format Format, text string, res model.AnalysisResult, width int) error {
	if format == FormatReport {
		return WriteReport(w, text, res, width)
	}
	return WriteText(w, text)
}

// ToFile writes an export to path atomically. Paths ending in ".zst" are
// zstd-compressed.
func ToFile(path string, format Format, text string, res model.AnalysisResult, width int) error {
	if strings.TrimFunc(text, analyzer.IsSpace) == "" {
		return ErrEmptyText
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "export-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp export: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	var out io.Writer = tmpFile
	var encoder *zstd.Encoder
	if strings.HasSuffix(path, zstdExt) {
		encoder, err = zstd.NewWriter(tmpFile)
		if err != nil {
			return fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		out = encoder
	}
	if err := Write(out, format, text, res, width); err != nil {
		if encoder != nil {
			_ = encoder.Close()
		}
		return fmt.Errorf("failed to write export: %w", err)
	}
	if encoder != nil {
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to finalize compression: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ReadText reads a text file, decompressing ".zst" files.
func ReadText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	var in io.Reader = file
	if strings.HasSuffix(path, zstdExt) {
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return "", fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer decoder.Close()
		in = decoder
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
