package netdrive

import (
	"context"
	"fmt"
	"strings"

	"github.com/kanton-aargau/windows-fs/internal/parse"
	"github.com/kanton-aargau/windows-fs/internal/winpath"
)

// FreeSpace returns the free bytes on a drive. On Windows the volume is
// queried natively first; otherwise the value is read from wmic output.
func (s *Service) FreeSpace(ctx context.Context, letter string) (uint64, error) {
	letter, err := normalizeLetter(letter)
	if err != nil {
		return 0, err
	}

	if free, _, err := nativeSpace(letter); err == nil {
		return free, nil
	}

	return s.wmicValue(ctx, letter, "FreeSpace")
}

// TotalSize returns the total size in bytes of a drive.
func (s *Service) TotalSize(ctx context.Context, letter string) (uint64, error) {
	letter, err := normalizeLetter(letter)
	if err != nil {
		return 0, err
	}

	if _, total, err := nativeSpace(letter); err == nil {
		return total, nil
	}

	return s.wmicValue(ctx, letter, "Size")
}

// wmicValue reads a single numeric field for a logical disk, e.g.
//
//	wmic logicaldisk where "DeviceID='Z:'" get FreeSpace /value
//
// which reports lines of the form `FreeSpace=42948563968`.
func (s *Service) wmicValue(ctx context.Context, letter, field string) (uint64, error) {
	where := fmt.Sprintf("DeviceID='%s:'", letter)
	args := []string{"logicaldisk", "where", where, "get", field, "/value"}

	out, err := s.runner.Run(ctx, "wmic", args...)
	if err != nil {
		return 0, commandError("wmic", args, out, err)
	}

	for _, line := range strings.Split(out, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), field+"=")
		if !ok {
			continue
		}

		if n, ok := parse.Digits(rest); ok {
			return n, nil
		}
	}

	return 0, fmt.Errorf("netdrive: no %s reported for drive %s:", field, letter)
}

// normalizeLetter validates a drive letter and strips the trailing colon.
func normalizeLetter(letter string) (string, error) {
	if !winpath.IsDriveLetter(letter) {
		return "", fmt.Errorf("netdrive: invalid drive letter %q", letter)
	}

	return strings.ToUpper(strings.TrimSuffix(letter, ":")), nil
}
