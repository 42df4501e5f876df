package netdrive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kanton-aargau/windows-fs/internal/parse"
	"github.com/kanton-aargau/windows-fs/internal/winpath"
)

// ErrNoFreeLetter reports that every candidate drive letter is in use.
var ErrNoFreeLetter = errors.New("netdrive: no free drive letter")

// Mount describes one mounted network drive as reported by `net use`.
type Mount struct {
	// Status is the connection status column, e.g. "OK" or "Disconnected".
	// Empty when net use leaves the column blank.
	Status string `json:"status"`
	// Letter is the local drive letter without the colon, e.g. "Z".
	Letter string `json:"letter"`
	// UNC is the remote path, e.g. \\server\share.
	UNC string `json:"unc"`
}

// Service runs network drive operations through a Runner.
type Service struct {
	runner Runner
}

// New creates a Service that shells out to the real net and wmic commands.
func New() *Service {
	return &Service{runner: execRunner{}}
}

// NewWithRunner creates a Service with a custom Runner. Use in tests.
func NewWithRunner(r Runner) *Service {
	return &Service{runner: r}
}

// MountOptions configures a Mount call.
type MountOptions struct {
	// UNC is the remote share, e.g. \\server\share. Required.
	UNC string
	// Letter is the local drive letter. Empty picks the first unused letter.
	Letter string
	// Username is passed as /user:<name> when set.
	Username string
	// Password accompanies Username on the command line when set.
	Password string
	// Persistent re-establishes the mapping at the next logon.
	Persistent bool
}

// MountShare builds a MountOptions for a server and share-relative path in
// forward-slash form.
func MountShare(server, path string) MountOptions {
	return MountOptions{UNC: winpath.ToUncPath(server, path)}
}

// Mount maps a UNC path to a local drive letter via `net use` and returns
// the letter used.
func (s *Service) Mount(ctx context.Context, opts MountOptions) (string, error) {
	if opts.UNC == "" {
		return "", errors.New("netdrive: empty UNC path")
	}

	letter := strings.ToUpper(strings.TrimSuffix(opts.Letter, ":"))

	if letter == "" {
		free, err := s.freeLetter(ctx)
		if err != nil {
			return "", err
		}

		letter = free
	} else if !winpath.IsDriveLetter(letter) {
		return "", fmt.Errorf("netdrive: invalid drive letter %q", opts.Letter)
	}

	args := []string{"use", letter + ":", opts.UNC}

	if opts.Password != "" {
		args = append(args, opts.Password)
	}

	if opts.Username != "" {
		args = append(args, "/user:"+opts.Username)
	}

	persistent := "no"
	if opts.Persistent {
		persistent = "yes"
	}

	args = append(args, "/persistent:"+persistent)

	out, err := s.runner.Run(ctx, "net", args...)
	if err != nil {
		return "", commandError("net", args, out, err)
	}

	return letter, nil
}

// Unmount removes the mapping for a drive letter via `net use /delete`.
// Open files on the drive are closed without confirmation.
func (s *Service) Unmount(ctx context.Context, letter string) error {
	if !winpath.IsDriveLetter(letter) {
		return fmt.Errorf("netdrive: invalid drive letter %q", letter)
	}

	letter = strings.ToUpper(strings.TrimSuffix(letter, ":"))

	args := []string{"use", letter + ":", "/delete", "/y"}

	out, err := s.runner.Run(ctx, "net", args...)
	if err != nil {
		return commandError("net", args, out, err)
	}

	return nil
}

// List returns every mounted network drive reported by `net use`.
func (s *Service) List(ctx context.Context) ([]Mount, error) {
	out, err := s.runner.Run(ctx, "net", "use")
	if err != nil {
		return nil, commandError("net", []string{"use"}, out, err)
	}

	return parseMounts(out), nil
}

// Status returns the connection status of a mounted drive letter. The
// boolean is false when the letter is not mounted.
func (s *Service) Status(ctx context.Context, letter string) (string, bool, error) {
	if !winpath.IsDriveLetter(letter) {
		return "", false, fmt.Errorf("netdrive: invalid drive letter %q", letter)
	}

	letter = strings.ToUpper(strings.TrimSuffix(letter, ":"))

	mounts, err := s.List(ctx)
	if err != nil {
		return "", false, err
	}

	for _, m := range mounts {
		if m.Letter == letter {
			return m.Status, true, nil
		}
	}

	return "", false, nil
}

// parseMounts extracts mount entries from `net use` output. Header, banner,
// and summary lines carry no drive letter or UNC token and are skipped.
func parseMounts(out string) []Mount {
	var mounts []Mount

	for _, line := range strings.Split(out, "\n") {
		letter, ok := parse.DriveLetter(line)
		if !ok {
			continue
		}

		unc, ok := parse.UNCPath(line)
		if !ok {
			continue
		}

		status, _ := parse.StatusToken(line)
		// A blank status column makes the drive letter the leading token.
		if status == letter+":" {
			status = ""
		}

		mounts = append(mounts, Mount{Status: status, Letter: letter, UNC: unc})
	}

	return mounts
}

// freeLetter returns the first unused drive letter, probing from Z: down
// to D:. Letters claimed by a mapping or an existing volume are skipped.
func (s *Service) freeLetter(ctx context.Context) (string, error) {
	used := make(map[string]bool)

	mounts, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	for _, m := range mounts {
		used[m.Letter] = true
	}

	for c := 'Z'; c >= 'D'; c-- {
		letter := string(c)
		if used[letter] {
			continue
		}

		if _, err := os.Stat(winpath.DriveRoot(letter)); err == nil {
			continue
		}

		return letter, nil
	}

	return "", ErrNoFreeLetter
}
