package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/index"
	"tidy/internal/logging"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var destination string

	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Inspect or reset the content-hash index",
	}
	indexCmd.PersistentFlags().StringVar(&destination, "destination", "", "Destination root holding the index (overrides config)")

	resolveIndexPath := func() (string, error) {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return "", err
		}
		root := cfg.Paths.Destination
		if destination != "" {
			if root, err = config.ExpandPath(destination); err != nil {
				return "", err
			}
		}
		return filepath.Join(root, index.FileName), nil
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show index location and entry count",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveIndexPath()
			if err != nil {
				return err
			}
			store := index.Open(path, logging.NewNop())
			fmt.Fprintf(cmd.OutOrStdout(), "Index: %s\nEntries: %d\n", path, store.Len())
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed content digests and their stored paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveIndexPath()
			if err != nil {
				return err
			}
			store := index.Open(path, logging.NewNop())
			entries := store.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Index is empty.")
				return nil
			}

			digests := make([]string, 0, len(entries))
			for digest := range entries {
				digests = append(digests, digest)
			}
			sort.Strings(digests)

			headers := []string{"Digest", "Stored At", "First Seen"}
			rows := make([][]string, 0, len(digests))
			for _, digest := range digests {
				entry := entries[digest]
				firstSeen := "unknown"
				if !entry.FirstSeen.IsZero() {
					firstSeen = humanize.Time(entry.FirstSeen)
				}
				rows = append(rows, []string{shortDigest(digest), entry.Path, firstSeen})
			}

			out := cmd.OutOrStdout()
			if stdoutIsTTY() {
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft}))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s\t%s\t%s\n", row[0], row[1], row[2])
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop all index entries (duplicate detection restarts from scratch)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveIndexPath()
			if err != nil {
				return err
			}
			store := index.Open(path, logging.NewNop())
			count := store.Len()
			store.Clear()
			if err := store.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d index entries.\n", count)
			return nil
		},
	}

	indexCmd.AddCommand(statsCmd)
	indexCmd.AddCommand(listCmd)
	indexCmd.AddCommand(clearCmd)
	return indexCmd
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
