package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlens/internal/analyzer"
	"github.com/verte-zerg/wordlens/internal/config"
	"github.com/verte-zerg/wordlens/internal/export"
	"github.com/verte-zerg/wordlens/internal/goal"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordlens configuration
# Uncomment a value to enable it. CLI flags override config values.

[editor]
# goal = %d                 # Word-count goal
# autosave-seconds = %d      # Idle seconds before the draft is saved (0 disables)
# theme = %q            # Theme used until one is toggled in the editor

[analysis]
# keywords = %d             # Number of keywords to report
# reading-wpm = %.0f          # Reading speed
# speaking-wpm = %.0f         # Speaking speed
# stopwords-file = ""        # Extra stop words, one per line
# markdown = false           # Treat every analyze input as markdown

[export]
# format = %q          # text or report
# width = %d                # Wrap width of reports
`,
		goal.Default,
		defaultAutosave,
		defaultTheme,
		analyzer.KeywordLimit,
		analyzer.ReadingWPM,
		analyzer.SpeakingWPM,
		string(export.FormatReport),
		export.DefaultWidth,
	)
}
