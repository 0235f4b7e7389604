package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlens/internal/config"
	"github.com/verte-zerg/wordlens/internal/export"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-analyze a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatchCmd,
	}
	cmd.Flags().BoolVar(&analyzeMarkdown, "markdown", false, "treat the file as markdown")
	return cmd
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "markdown", &analyzeMarkdown, fileCfg.Analysis.Markdown)
	an, err := newAnalyzer(cmd, fileCfg)
	if err != nil {
		return err
	}
	path := args[0]
	logger := newLogger()
	out := cmd.OutOrStdout()

	report := func(text string) {
		res := an.Analyze(maybeMarkdown(path, text))
		if _, err := fmt.Fprintf(out, "%s %s\n", time.Now().Format(time.TimeOnly), summaryLine(res)); err != nil {
			logger.Error().Err(err).Msg("failed to write output")
		}
	}

	text, err := export.ReadText(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	report(text)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFile(ctx, path, logger, report)
}

// watchFile calls onChange with the new content after every write to path.
// The parent directory is watched so that editors which replace the file on
// save are followed. It returns nil when ctx is cancelled.
func watchFile(ctx context.Context, path string, logger zerolog.Logger, onChange func(text string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close watcher")
		}
	}()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logger.Debug().Str("path", target).Msg("watching")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			text, err := export.ReadText(target)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				logger.Warn().Err(err).Str("path", target).Msg("failed to re-read file")
				continue
			}
			onChange(text)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		}
	}
}
