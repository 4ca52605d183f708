package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/organize"
)

type organizeFlags struct {
	source       string
	destination  string
	sortMode     string
	dryRun       bool
	nonRecursive bool
	keepEmpty    bool
}

func (f *organizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, "source", "", "Directory to scan (overrides config)")
	cmd.Flags().StringVar(&f.destination, "destination", "", "Root of the organized tree (overrides config)")
	cmd.Flags().StringVar(&f.sortMode, "sort-mode", "", "Bucket files by \"date\" (YYYY-MM) or \"source\" (workflow)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Report planned moves without touching any file")
	cmd.Flags().BoolVar(&f.nonRecursive, "non-recursive", false, "Only process top-level files of source")
	cmd.Flags().BoolVar(&f.keepEmpty, "keep-empty", false, "Do not remove emptied directories from source")
}

// buildOptions merges config defaults with any explicitly set flags.
func (f *organizeFlags) buildOptions(cmd *cobra.Command, cfg *config.Config) (organize.Options, error) {
	opts := organize.OptionsFromConfig(cfg)

	if cmd.Flags().Changed("source") {
		expanded, err := config.ExpandPath(f.source)
		if err != nil {
			return organize.Options{}, err
		}
		opts.Source = expanded
	}
	if cmd.Flags().Changed("destination") {
		expanded, err := config.ExpandPath(f.destination)
		if err != nil {
			return organize.Options{}, err
		}
		opts.Destination = expanded
	}
	if cmd.Flags().Changed("sort-mode") {
		mode, err := organize.ParseSortMode(f.sortMode)
		if err != nil {
			return organize.Options{}, err
		}
		opts.SortMode = mode
	}
	if f.dryRun {
		opts.DryRun = true
	}
	if f.nonRecursive {
		opts.Recursive = false
	}
	if f.keepEmpty {
		opts.KeepEmptyDirs = true
	}
	return opts, nil
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	flags := &organizeFlags{}

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Run a single organizing pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			opts, err := flags.buildOptions(cmd, cfg)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			engine := organize.New(opts, logger)
			report, runErr := engine.Run(runCtx)
			if report != nil {
				recordHistory(runCtx, cfg, logger, report)
				renderReport(cmd.OutOrStdout(), report, stdoutIsTTY())
			}
			if runErr != nil && !isCancellation(runErr) {
				return runErr
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
