// Package cli implements the windowsfs command-line interface.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// New builds the root command with the given version.
func New(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "windowsfs",
		Short: "Windows filesystem and network drive utilities",
		Long: heredoc.Doc(`
			windowsfs mounts and unmounts SMB shares, reports drive free space
			and size, lists mounted network and local drives, and aggregates
			the size of directory trees.

			Drive operations shell out to the net and wmic commands and are
			only meaningful on Windows hosts. Directory aggregation works on
			every platform.
		`),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newStatCmd(),
		newMountCmd(),
		newUnmountCmd(),
		newListCmd(),
		newFreeCmd(),
		newSizeCmd(),
		newDrivesCmd(),
	)

	return root
}
