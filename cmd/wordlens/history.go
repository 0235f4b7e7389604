package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlens/internal/model"
	"github.com/verte-zerg/wordlens/internal/stats"
)

const defaultHistoryWindow = 5

var (
	historyLast   int
	historyWindow int
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved draft snapshots",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N snapshots")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWindow, "moving average window for trends")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyWindow < 0 {
		return fmt.Errorf("--window must be >= 0")
	}
	st, closeFn, err := openStore(newLogger())
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := stats.BuildReport(context.Background(), st, model.HistoryConfig{Last: historyLast, Window: historyWindow})
	if err != nil {
		return fmt.Errorf("failed to load snapshots: %w", err)
	}
	if err := report.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
