//go:build windows

package netdrive

import (
	"golang.org/x/sys/windows"

	"github.com/kanton-aargau/windows-fs/internal/winpath"
)

// nativeSpace queries a volume's free and total bytes via GetDiskFreeSpaceEx,
// avoiding a wmic round trip.
func nativeSpace(letter string) (free, total uint64, err error) {
	root, err := windows.UTF16PtrFromString(winpath.DriveRoot(letter))
	if err != nil {
		return 0, 0, err
	}

	var freeForCaller, totalBytes, totalFree uint64

	if err := windows.GetDiskFreeSpaceEx(root, &freeForCaller, &totalBytes, &totalFree); err != nil {
		return 0, 0, err
	}

	return totalFree, totalBytes, nil
}
