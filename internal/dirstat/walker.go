package dirstat

import (
	"context"
	"io/fs"
	"time"

	"github.com/charlievieth/fastwalk"
)

// FileRecord is an immutable snapshot of one regular file taken at walk time.
type FileRecord struct {
	// Path is the file path in native separator form.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// ModTime is the file's last modification time.
	ModTime time.Time `json:"mod_time"`
	// Mode is the file mode reported by the walk.
	Mode fs.FileMode `json:"mode"`
}

// WalkFunc is invoked once per regular file encountered during a walk.
type WalkFunc func(rec FileRecord)

// Walker enumerates every regular file below a root directory. Implementations
// may invoke fn from multiple goroutines concurrently but must not invoke it
// after Walk returns.
type Walker interface {
	Walk(ctx context.Context, root string, fn WalkFunc) error
}

// FastWalker is the production Walker backed by fastwalk's parallel traversal.
// The zero value is ready to use.
type FastWalker struct {
	// Follow controls whether symlinks are followed.
	Follow bool
}

// Walk visits every regular file below root. Directories and irregular files
// are skipped; a file whose metadata cannot be read still yields a record
// with zero size so it is counted.
func (w FastWalker) Walk(ctx context.Context, root string, fn WalkFunc) error {
	conf := &fastwalk.Config{
		Follow: w.Follow,
	}

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			fn(FileRecord{Path: path})

			return nil //nolint:nilerr // Unreadable metadata contributes zero size
		}

		fn(FileRecord{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})

		return nil
	})
}
