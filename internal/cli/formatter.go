package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/kanton-aargau/windows-fs/internal/dirstat"
	"github.com/kanton-aargau/windows-fs/internal/netdrive"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// printJSON writes any value as indented JSON.
func printJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// printStatTable writes a directory result in human-readable table format,
// listing the topN largest files.
func printStatTable(result *dirstat.Result, writer io.Writer, topN int) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	top := topFiles(result, topN)

	if len(top) > 0 {
		fmt.Fprintln(w, "\nTop files:\t\t")
	}

	for i, rec := range top {
		pct := 0.0
		if result.TotalSize > 0 {
			pct = 100.0 * float64(rec.Size) / float64(result.TotalSize)
		}

		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			len(top)-i, filepath.ToSlash(rec.Path), humanize.IBytes(uint64(rec.Size)), pct)
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", result.FileCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalSize)), result.TotalSize)
	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}

// topFiles returns the topN largest records, smallest first so the table
// reads bottom-up like the numbered display.
func topFiles(result *dirstat.Result, topN int) []dirstat.FileRecord {
	if topN <= 0 {
		return nil
	}

	recs := make([]dirstat.FileRecord, 0, len(result.Files))
	for _, rec := range result.Files {
		recs = append(recs, rec)
	}

	// Sort by size (largest first) and trim to top N
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Size != recs[j].Size {
			return recs[i].Size > recs[j].Size
		}

		return recs[i].Path < recs[j].Path
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}

	// Reverse for display (smallest first, displayed in reverse)
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}

	return recs
}

// printMountTable writes the mounted network drives as a table.
func printMountTable(mounts []netdrive.Mount, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Status\tLocal\tRemote")

	for _, m := range mounts {
		status := m.Status
		if status == "" {
			status = "-"
		}

		fmt.Fprintf(w, "%s\t%s:\t%s\n", status, m.Letter, m.UNC)
	}

	return w.Flush()
}

// printDriveTable writes local volumes as a table with humanized sizes.
func printDriveTable(drives []netdrive.LocalDrive, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Device\tMount\tType\tTotal\tFree")

	for _, d := range drives {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			d.Device, d.Mountpoint, d.Fstype,
			humanize.IBytes(d.Total), humanize.IBytes(d.Free))
	}

	return w.Flush()
}
