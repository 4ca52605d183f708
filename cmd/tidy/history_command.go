package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/history"
	"tidy/internal/logging"
	"tidy/internal/organize"
)

// recordHistory persists a pass report when the history store is enabled.
// Failures are logged, never surfaced: history must not fail a pass.
func recordHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, report *organize.Report) {
	if cfg == nil || !cfg.History.Enabled || cfg.History.Path == "" {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("history store unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	if err := store.RecordRun(ctx, report); err != nil {
		logger.Warn("failed to record pass history", logging.Error(err))
	}
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent organizing passes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled || cfg.History.Path == "" {
				return fmt.Errorf("pass history is disabled (enable [history] in the config)")
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded passes.")
				return nil
			}

			headers := []string{"When", "Source", "Mode", "Moved", "Dups", "Skipped", "Bytes", "Dry"}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				dry := ""
				if run.DryRun {
					dry = "yes"
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format(time.DateTime),
					run.Source,
					run.SortMode,
					strconv.Itoa(run.Moved),
					strconv.Itoa(run.Duplicates),
					strconv.Itoa(run.Skipped),
					humanize.Bytes(uint64(run.BytesMoved)),
					dry,
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft}

			if stdoutIsTTY() {
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s\t%s\t%s\tmoved=%s dups=%s skipped=%s bytes=%s dry=%s\n",
					row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of passes to list")
	return cmd
}
