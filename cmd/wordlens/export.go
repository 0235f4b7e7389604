package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlens/internal/config"
	"github.com/verte-zerg/wordlens/internal/export"
)

var (
	exportFormat string
	exportOut    string
	exportWidth  int
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export a text or report (defaults to the saved draft)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportFormat, "format", string(export.FormatReport), "export format: text or report")
	cmd.Flags().StringVar(&exportOut, "out", "", "output file; a .zst suffix compresses it")
	cmd.Flags().IntVar(&exportWidth, "width", export.DefaultWidth, "wrap width for reports")
	return cmd
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &exportFormat, fileCfg.Export.Format)
	applyIntConfig(cmd, "width", &exportWidth, fileCfg.Export.Width)

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	if exportWidth <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	an, err := newAnalyzer(cmd, fileCfg)
	if err != nil {
		return err
	}

	var text string
	if len(args) == 1 {
		if text, err = export.ReadText(args[0]); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else if text, err = loadDraft(context.Background(), newLogger()); err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = filepath.Join(config.DefaultExportDir(), export.FileName(format))
	}
	if err := export.ToFile(out, format, text, an.Analyze(text), exportWidth); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
