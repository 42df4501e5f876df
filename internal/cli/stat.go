package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kanton-aargau/windows-fs/internal/dirstat"
)

// allowedOutputs lists the supported output formats.
var allowedOutputs = []string{"table", "json"}

func newStatCmd() *cobra.Command {
	var (
		options dirstat.Options
		output  string
		topN    int
	)

	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Aggregate size and file count for a directory tree",
		Long: heredoc.Doc(`
			stat walks the directory tree below <path> and reports the total
			size, number of files, and the largest files found.

			The path may be given in forward-slash form (e.g. C:/Users/logs);
			it is normalized to the native separator before the walk starts.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, strings.ToLower(output)) {
				return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
			}

			options.Path = args[0]

			return runStat(cmd.Context(), options, strings.ToLower(output), topN)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().IntVarP(&topN, "top", "t", 10, "Number of largest files to display")
	cmd.Flags().BoolVar(&options.Follow, "follow", false, "Follow symlinks during the walk")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")

	return cmd
}

func runStat(ctx context.Context, options dirstat.Options, output string, topN int) error {
	enableProgress := output != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := dirstat.Stat(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch output {
	case "json":
		return printJSON(result, os.Stdout)
	default:
		return printStatTable(result, os.Stdout, topN)
	}
}
