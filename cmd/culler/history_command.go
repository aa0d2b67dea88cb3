package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"culler/internal/ledger"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sweep runs from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LedgerPath()
			if path == "" {
				return fmt.Errorf("run history is disabled (paths.ledger_path = \"off\")")
			}
			store, err := ledger.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if runID != "" {
				return printRunDetail(cmd, store, runID)
			}
			return printRecentRuns(cmd, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	cmd.Flags().StringVar(&runID, "run", "", "Show every deletion recorded for one run")
	return cmd
}

func printRecentRuns(cmd *cobra.Command, store *ledger.Store, limit int) error {
	summaries, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	headers := []string{"Run", "When", "Mode", "Root", "Deleted", "Failed"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight}
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		mode := summary.Run.Mode
		if summary.Run.DryRun {
			mode += " (dry)"
		}
		rows = append(rows, []string{
			shortRunID(summary.Run.ID),
			humanize.Time(summary.Run.StartedAt),
			mode,
			summary.Run.Root,
			fmt.Sprintf("%d", summary.Deletions-summary.Failures),
			fmt.Sprintf("%d", summary.Failures),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns, isTerminal(out)))
	return nil
}

func printRunDetail(cmd *cobra.Command, store *ledger.Store, runID string) error {
	deletions, err := store.Deletions(cmd.Context(), runID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(deletions) == 0 {
		fmt.Fprintf(out, "No deletions recorded for run %s.\n", runID)
		return nil
	}

	headers := []string{"Status", "Score", "Size", "Group", "Path"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft}
	rows := make([][]string, 0, len(deletions))
	for _, del := range deletions {
		rows = append(rows, []string{
			del.Status,
			fmt.Sprintf("%.1f", del.Score),
			humanSize(del.SizeMB),
			del.GroupKey,
			del.Path,
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns, isTerminal(out)))
	return nil
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
