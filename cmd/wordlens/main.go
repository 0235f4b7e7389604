// Package main provides the CLI entrypoint for wordlens.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlens/internal/analyzer"
	"github.com/verte-zerg/wordlens/internal/clipboard"
	"github.com/verte-zerg/wordlens/internal/config"
	"github.com/verte-zerg/wordlens/internal/export"
	"github.com/verte-zerg/wordlens/internal/goal"
	"github.com/verte-zerg/wordlens/internal/logging"
	"github.com/verte-zerg/wordlens/internal/model"
	"github.com/verte-zerg/wordlens/internal/store"
	"github.com/verte-zerg/wordlens/internal/tui"
	"github.com/verte-zerg/wordlens/internal/wordlist"
)

const (
	defaultAutosave = 2
	defaultTheme    = string(model.ThemeDark)
)

var (
	verbose bool

	analysisKeywords    int
	analysisReadingWPM  float64
	analysisSpeakingWPM float64
	analysisStopWords   string

	editorGoal     int
	editorAutosave int
	editorTheme    string
	editorWidth    int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordlens",
		Short:         "Live text statistics editor",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runEditorCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&analysisKeywords, "keywords", analyzer.KeywordLimit, "number of keywords to report")
	rootCmd.PersistentFlags().Float64Var(&analysisReadingWPM, "reading-wpm", analyzer.ReadingWPM, "reading speed in words per minute")
	rootCmd.PersistentFlags().Float64Var(&analysisSpeakingWPM, "speaking-wpm", analyzer.SpeakingWPM, "speaking speed in words per minute")
	rootCmd.PersistentFlags().StringVar(&analysisStopWords, "stopwords", "", "file with extra stop words, one per line")

	rootCmd.Flags().IntVar(&editorGoal, "goal", goal.Default, "word-count goal")
	rootCmd.Flags().IntVar(&editorAutosave, "autosave", defaultAutosave, "seconds of idle time before the draft is saved (0 disables)")
	rootCmd.Flags().StringVar(&editorTheme, "theme", defaultTheme, "initial theme when none is saved (dark or light)")
	rootCmd.Flags().IntVar(&editorWidth, "export-width", export.DefaultWidth, "wrap width of exported reports")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runEditorCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "goal", &editorGoal, fileCfg.Editor.Goal)
	applyIntConfig(cmd, "autosave", &editorAutosave, fileCfg.Editor.AutosaveSeconds)
	applyStringConfig(cmd, "theme", &editorTheme, fileCfg.Editor.Theme)
	applyIntConfig(cmd, "export-width", &editorWidth, fileCfg.Export.Width)

	cfg := model.EditorConfig{
		Goal:            editorGoal,
		AutosaveSeconds: editorAutosave,
		Theme:           model.Theme(strings.ToLower(editorTheme)),
		ExportWidth:     editorWidth,
		ExportPath:      filepath.Join(config.DefaultExportDir(), export.FileName(export.FormatReport)),
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	an, err := newAnalyzer(cmd, fileCfg)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.OpenFile(config.DefaultLogPath(), verbose)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(logger, st)

	editor := tui.NewModel(cfg, st, an, clipboard.Default(), logger)
	program := tea.NewProgram(editor, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// newAnalyzer merges analysis flags with the config file.
func newAnalyzer(cmd *cobra.Command, fileCfg config.FileConfig) (*analyzer.Analyzer, error) {
	applyIntConfig(cmd, "keywords", &analysisKeywords, fileCfg.Analysis.Keywords)
	applyFloatConfig(cmd, "reading-wpm", &analysisReadingWPM, fileCfg.Analysis.ReadingWPM)
	applyFloatConfig(cmd, "speaking-wpm", &analysisSpeakingWPM, fileCfg.Analysis.SpeakingWPM)
	applyStringConfig(cmd, "stopwords", &analysisStopWords, fileCfg.Analysis.StopWordsFile)

	opts := analyzer.Options{
		ReadingWPM:   analysisReadingWPM,
		SpeakingWPM:  analysisSpeakingWPM,
		KeywordLimit: analysisKeywords,
	}
	if err := validateAnalysis(opts); err != nil {
		return nil, err
	}
	if analysisStopWords != "" {
		words, err := wordlist.LoadWords(analysisStopWords)
		if err != nil {
			return nil, stopWordsLoadError(analysisStopWords, err)
		}
		opts.ExtraStopWords = words
	}
	return analyzer.New(opts), nil
}

func openStore(logger zerolog.Logger) (*store.Store, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, func() { closeStore(logger, st) }, nil
}

func closeStore(logger zerolog.Logger, st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logger.Error().Err(cerr).Msg("failed to close db")
	}
}

func loadDraft(ctx context.Context, logger zerolog.Logger) (string, error) {
	st, closeFn, err := openStore(logger)
	if err != nil {
		return "", err
	}
	defer closeFn()
	draft, err := st.LoadDraft(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load draft: %w", err)
	}
	return draft.Text, nil
}

func newLogger() zerolog.Logger {
	return logging.NewConsole(os.Stderr, verbose)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.EditorConfig) error {
	if cfg.Goal <= 0 {
		return fmt.Errorf("--goal: %w", goal.ErrInvalidGoal)
	}
	if cfg.AutosaveSeconds < 0 {
		return fmt.Errorf("--autosave must be >= 0")
	}
	if cfg.Theme != model.ThemeDark && cfg.Theme != model.ThemeLight {
		return fmt.Errorf("--theme must be dark or light")
	}
	if cfg.ExportWidth <= 0 {
		return fmt.Errorf("--export-width must be > 0")
	}
	return nil
}

func validateAnalysis(opts analyzer.Options) error {
	if opts.KeywordLimit <= 0 {
		return fmt.Errorf("--keywords must be > 0")
	}
	if opts.ReadingWPM <= 0 {
		return fmt.Errorf("--reading-wpm must be > 0")
	}
	if opts.SpeakingWPM <= 0 {
		return fmt.Errorf("--speaking-wpm must be > 0")
	}
	return nil
}

func stopWordsLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load stop words: %v", err),
		fmt.Sprintf("expected stop words at: %s", path),
		"The file needs one word per line; lines starting with # are ignored.",
		"Set [analysis] stopwords-file in: wordlens config",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
