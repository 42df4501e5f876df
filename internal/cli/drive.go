package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kanton-aargau/windows-fs/internal/netdrive"
	"github.com/kanton-aargau/windows-fs/internal/winpath"
)

func newMountCmd() *cobra.Command {
	var opts netdrive.MountOptions

	var server string

	cmd := &cobra.Command{
		Use:   "mount <unc-path | share-path>",
		Short: "Mount an SMB share on a drive letter",
		Long: heredoc.Doc(`
			mount maps a network share to a local drive letter via net use.

			The share is given either as a full UNC path (\\server\share) or,
			together with --server, as a share-relative path in forward-slash
			form (some/path). Without --letter the first unused letter between
			Z: and D: is picked.
		`),
		Example: heredoc.Doc(`
			windowsfs mount '\\server\share' --letter Z
			windowsfs mount some/path/to/a/log --server fileserver --user backup
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if server != "" {
				opts.UNC = winpath.ToUncPath(server, args[0])
			} else {
				opts.UNC = winpath.ToWindowsPath(args[0])
				if !strings.HasPrefix(opts.UNC, `\\`) {
					return fmt.Errorf("%q is not a UNC path; pass --server for share-relative paths", args[0])
				}
			}

			letter, err := netdrive.New().Mount(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Printf("Mounted %s on %s:\n", opts.UNC, letter)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Letter, "letter", "l", "", "Drive letter to mount on (default: first unused)")
	cmd.Flags().StringVar(&server, "server", "", "Server name for share-relative paths")
	cmd.Flags().StringVarP(&opts.Username, "user", "u", "", "Username for the connection")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Password for the connection")
	cmd.Flags().BoolVar(&opts.Persistent, "persistent", false, "Restore the mapping at next logon")

	return cmd
}

func newUnmountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmount <letter>",
		Short: "Unmount a network drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := netdrive.New().Unmount(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Unmounted %s\n", winpath.DriveRoot(args[0]))

			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mounted network drives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mounts, err := netdrive.New().List(cmd.Context())
			if err != nil {
				return err
			}

			if strings.ToLower(output) == "json" {
				return printJSON(mounts, os.Stdout)
			}

			return printMountTable(mounts, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")

	return cmd
}

func newFreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "free <letter>",
		Short: "Report the free space of a drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			free, err := netdrive.New().FreeSpace(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d bytes)\n", humanize.IBytes(free), free)

			return nil
		},
	}
}

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <letter>",
		Short: "Report the total size of a drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := netdrive.New().TotalSize(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d bytes)\n", humanize.IBytes(total), total)

			return nil
		},
	}
}

func newDrivesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "drives",
		Short: "List local drives with usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drives, err := netdrive.LocalDrives(cmd.Context())
			if err != nil {
				return err
			}

			if strings.ToLower(output) == "json" {
				return printJSON(drives, os.Stdout)
			}

			return printDriveTable(drives, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")

	return cmd
}
