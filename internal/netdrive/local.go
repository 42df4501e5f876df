package netdrive

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// LocalDrive describes one local volume.
type LocalDrive struct {
	// Device is the volume identifier, e.g. "C:" on Windows.
	Device string `json:"device"`
	// Mountpoint is the root of the volume, e.g. `C:\`.
	Mountpoint string `json:"mountpoint"`
	// Fstype is the filesystem type, e.g. "NTFS".
	Fstype string `json:"fstype"`
	// Total is the volume size in bytes.
	Total uint64 `json:"total"`
	// Free is the free space in bytes.
	Free uint64 `json:"free"`
}

// LocalDrives enumerates local volumes with their usage. Volumes whose
// usage cannot be read (e.g. an empty CD-ROM drive) are reported with zero
// sizes rather than dropped.
func LocalDrives(ctx context.Context) ([]LocalDrive, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	drives := make([]LocalDrive, 0, len(partitions))

	for _, p := range partitions {
		drive := LocalDrive{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
		}

		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil && usage != nil {
			drive.Total = usage.Total
			drive.Free = usage.Free
		}

		drives = append(drives, drive)
	}

	return drives, nil
}
