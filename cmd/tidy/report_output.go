package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tidy/internal/organize"
)

var titleCaser = cases.Title(language.Und)

// renderReport writes a human-readable pass summary: one table (or plain
// lines off-TTY) of per-file actions, per-category totals, and the overall
// counts the GUI shell also consumes.
func renderReport(out io.Writer, report *organize.Report, useTable bool) {
	if len(report.Actions) > 0 {
		if useTable {
			headers := []string{"Action", "Source", "Destination", "Size"}
			rows := make([][]string, 0, len(report.Actions))
			for _, action := range report.Actions {
				destination := action.Destination
				if action.Action == organize.ActionSkipped {
					destination = action.Error
				}
				rows = append(rows, []string{
					string(action.Action),
					action.Source,
					destination,
					humanize.Bytes(uint64(action.Size)),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
		} else {
			for _, action := range report.Actions {
				switch action.Action {
				case organize.ActionSkipped:
					fmt.Fprintf(out, "[SKIPPED] %s (%s)\n", action.Source, action.Error)
				case organize.ActionDuplicate:
					fmt.Fprintf(out, "[DUPLICATE] %s -> %s\n", action.Source, action.Destination)
				default:
					fmt.Fprintf(out, "[MOVED] %s -> %s\n", action.Source, action.Destination)
				}
			}
		}
	}

	if categories := categoryCounts(report); len(categories) > 0 {
		fmt.Fprint(out, "By category:")
		for _, entry := range categories {
			fmt.Fprintf(out, " %s %d", titleCaser.String(entry.name), entry.count)
		}
		fmt.Fprintln(out)
	}

	suffix := ""
	if report.DryRun {
		suffix = " (dry run, nothing was changed)"
	}
	fmt.Fprintf(out, "Done: moved=%d duplicates=%d skipped=%d (%s)%s\n",
		report.Moved, report.Duplicates, report.Skipped,
		humanize.Bytes(uint64(report.BytesMoved)), suffix)

	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
}

type categoryCount struct {
	name  string
	count int
}

func categoryCounts(report *organize.Report) []categoryCount {
	counts := make(map[string]int)
	for _, action := range report.Actions {
		if action.Action == organize.ActionMoved && action.Category != "" {
			counts[action.Category]++
		}
	}
	out := make([]categoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, categoryCount{name: name, count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}
