package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/wordlens/internal/analyzer"
	"github.com/verte-zerg/wordlens/internal/clipboard"
	"github.com/verte-zerg/wordlens/internal/config"
	"github.com/verte-zerg/wordlens/internal/export"
	"github.com/verte-zerg/wordlens/internal/goal"
	"github.com/verte-zerg/wordlens/internal/mdtext"
	"github.com/verte-zerg/wordlens/internal/model"
	"github.com/verte-zerg/wordlens/internal/stats"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	sourceStdin     = "<stdin>"
	sourceClipboard = "<clipboard>"
	sourceDraft     = "<draft>"
)

var (
	analyzeStdin     bool
	analyzeClipboard bool
	analyzeMarkdown  bool
	analyzeOutput    string
	analyzeGoal      string
)

// input is one text to analyze and where it came from.
type input struct {
	source string
	text   string
}

type goalReport struct {
	Name    string  `json:"name" yaml:"name"`
	Words   int     `json:"words" yaml:"words"`
	Goal    int     `json:"goal" yaml:"goal"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type analysisReport struct {
	Source string               `json:"source" yaml:"source"`
	Result model.AnalysisResult `json:"result" yaml:"result"`
	Goal   *goalReport          `json:"goal,omitempty" yaml:"goal,omitempty"`
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [paths|globs...]",
		Short: "Analyze files, stdin, the clipboard, or the saved draft",
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().BoolVar(&analyzeStdin, "stdin", false, "read text from stdin")
	cmd.Flags().BoolVar(&analyzeClipboard, "clipboard", false, "read text from the clipboard")
	cmd.Flags().BoolVar(&analyzeMarkdown, "markdown", false, "treat every input as markdown")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", outputText, "output format: text, json, or yaml")
	cmd.Flags().StringVar(&analyzeGoal, "goal", "", "report progress toward a word-count goal")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "markdown", &analyzeMarkdown, fileCfg.Analysis.Markdown)

	output := strings.ToLower(strings.TrimSpace(analyzeOutput))
	if output != outputText && output != outputJSON && output != outputYAML {
		return fmt.Errorf("--output must be text, json, or yaml")
	}
	goalWords := 0
	if analyzeGoal != "" {
		if goalWords, err = goal.Parse(analyzeGoal); err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
	}

	an, err := newAnalyzer(cmd, fileCfg)
	if err != nil {
		return err
	}
	inputs, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}

	reports := make([]analysisReport, 0, len(inputs))
	for _, in := range inputs {
		report := analysisReport{Source: in.source, Result: an.Analyze(in.text)}
		if goalWords > 0 {
			p := goal.Progress(report.Result.WordCount, goalWords)
			report.Goal = &goalReport{Name: goal.Name(goalWords), Words: p.Words, Goal: p.Goal, Percent: p.Percent}
		}
		reports = append(reports, report)
	}
	return writeReports(cmd.OutOrStdout(), output, reports)
}

// collectInputs gathers texts from the requested sources. With no source it
// falls back to the saved draft.
func collectInputs(cmd *cobra.Command, args []string) ([]input, error) {
	var inputs []input
	if analyzeStdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		inputs = append(inputs, input{source: sourceStdin, text: maybeMarkdown(sourceStdin, string(data))})
	}
	if analyzeClipboard {
		text, err := clipboard.Paste(clipboard.System{})
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{source: sourceClipboard, text: maybeMarkdown(sourceClipboard, text)})
	}
	paths, err := expandPaths(args)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		text, err := export.ReadText(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		inputs = append(inputs, input{source: path, text: maybeMarkdown(path, text)})
	}
	if len(inputs) > 0 {
		return inputs, nil
	}
	text, err := loadDraft(context.Background(), newLogger())
	if err != nil {
		return nil, err
	}
	return []input{{source: sourceDraft, text: text}}, nil
}

// expandPaths resolves glob arguments (including "**") and keeps plain paths
// as given. Duplicates are dropped.
func expandPaths(args []string) ([]string, error) {
	seen := map[string]struct{}{}
	var paths []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("invalid glob pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, match := range matches {
			add(match)
		}
	}
	return paths, nil
}

func maybeMarkdown(source, text string) string {
	if analyzeMarkdown || isMarkdownPath(source) {
		return mdtext.PlainText([]byte(text))
	}
	return text
}

func isMarkdownPath(path string) bool {
	path = strings.TrimSuffix(strings.ToLower(path), ".zst")
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

func writeReports(w io.Writer, output string, reports []analysisReport) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return enc.Close()
	}
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w, ""); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if err := stats.RenderResult(w, report.Source, report.Result); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if report.Goal != nil {
			p := goal.Progress(report.Goal.Words, report.Goal.Goal)
			if _, err := fmt.Fprintf(w, "Goal (%s): %s\n", report.Goal.Name, goal.Describe(p)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

// summaryLine renders a result on one line for streaming output.
func summaryLine(res model.AnalysisResult) string {
	label := res.ReadabilityLabel
	if label == "" {
		label = analyzer.LabelNotAvailable
	}
	return fmt.Sprintf("words=%d chars=%d sentences=%d paragraphs=%d reading=%s readability=%d (%s)",
		res.WordCount, res.CharCount, res.SentenceCount, res.ParagraphCount, res.ReadingTime, res.ReadabilityScore, label)
}
