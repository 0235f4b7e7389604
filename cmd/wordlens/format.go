package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlens/internal/export"
	"github.com/verte-zerg/wordlens/internal/textfmt"
)

var (
	formatCase    string
	formatSqueeze bool
	formatSave    bool
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [path]",
		Short: "Change case or squeeze spaces of a file or the saved draft",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFormatCmd,
	}
	cmd.Flags().StringVar(&formatCase, "case", "", "case transform: upper, lower, or title")
	cmd.Flags().BoolVar(&formatSqueeze, "squeeze", false, "collapse whitespace runs into single spaces")
	cmd.Flags().BoolVar(&formatSave, "save", false, "write the result back to the saved draft")
	return cmd
}

func runFormatCmd(cmd *cobra.Command, args []string) error {
	if formatCase == "" && !formatSqueeze {
		return fmt.Errorf("nothing to do: pass --case and/or --squeeze")
	}
	if formatSave && len(args) == 1 {
		return fmt.Errorf("--save only applies to the saved draft")
	}

	var text string
	var err error
	if len(args) == 1 {
		if text, err = export.ReadText(args[0]); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else if text, err = loadDraft(context.Background(), newLogger()); err != nil {
		return err
	}

	if formatCase != "" {
		var ok bool
		if text, ok = textfmt.Apply(textfmt.Case(formatCase), text); !ok {
			return fmt.Errorf("--case must be upper, lower, or title")
		}
	}
	if formatSqueeze {
		text = textfmt.SqueezeSpaces(text)
	}

	if formatSave {
		logger := newLogger()
		st, closeFn, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := st.SaveDraft(context.Background(), text); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		logger.Debug().Int("bytes", len(text)).Msg("saved formatted draft")
		return nil
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
