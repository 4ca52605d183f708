package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tidy/internal/organize"
	"tidy/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	flags := &organizeFlags{}
	var intervalSeconds int
	var onChange bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Organize continuously until interrupted",
		Long: "Runs an organizing pass immediately, then repeats after each idle\n" +
			"interval (measured between pass completions). Ctrl+C stops the loop\n" +
			"between passes; a file move already in progress always completes.",
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

			interval := cfg.Watch.Interval
			if cmd.Flags().Changed("interval") {
				interval = intervalSeconds
			}
			if interval < 1 {
				interval = 1
			}
			useChangeTrigger := cfg.Watch.OnChange
			if cmd.Flags().Changed("on-change") {
				useChangeTrigger = onChange
			}

			runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			engine := organize.New(opts, logger)
			scheduler := watch.New(func(passCtx context.Context) (*organize.Report, error) {
				report, runErr := engine.Run(passCtx)
				if report != nil {
					recordHistory(passCtx, cfg, logger, report)
				}
				return report, runErr
			}, time.Duration(interval)*time.Second, logger)
			if useChangeTrigger {
				scheduler.EnableChangeTrigger(opts.Source)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s every %ds. Press Ctrl+C to stop.\n", opts.Source, interval)
			return scheduler.Run(runCtx)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&intervalSeconds, "interval", 15, "Seconds between pass completions")
	cmd.Flags().BoolVar(&onChange, "on-change", false, "Also trigger passes on filesystem changes")
	return cmd
}
