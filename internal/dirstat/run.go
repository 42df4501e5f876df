package dirstat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrEmptyPath reports a Stat call without a path. This is a programmer
// error and is returned before any traversal begins.
var ErrEmptyPath = errors.New("dirstat: empty path")

// WalkError wraps a traversal failure. No partial result accompanies it.
type WalkError struct {
	// Path is the normalized root of the failed walk.
	Path string
	// Err is the underlying cause as reported by the walk.
	Err error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walking %q: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Options configures a directory walk.
type Options struct {
	// Path is the directory to analyze, in forward-slash or native form.
	Path string
	// Follow controls whether symlinks are followed.
	Follow bool
	// Walker overrides the traversal source (nil = FastWalker).
	Walker Walker
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // a is idiomatic for accumulator
func startProgressReporter(ctx context.Context, a *accumulator, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := a.snapshot()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stat walks the directory tree at opt.Path and returns the aggregated
// size, count, and per-file metadata of every regular file below it.
//
// The path is normalized from forward-slash to native separator form before
// the walk starts. Visit order is whatever the walker yields and must not be
// assumed sorted. If the walk reports an error the whole operation fails
// with a *WalkError and any partial aggregation is discarded.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Stat(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		return nil, ErrEmptyPath
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	path := filepath.Clean(filepath.FromSlash(opt.Path))

	// Validate path exists and is a directory before starting any traversal
	statInfo, err := os.Stat(path)
	if err != nil {
		return nil, &WalkError{Path: path, Err: err}
	}

	if !statInfo.IsDir() {
		return nil, &WalkError{Path: path, Err: fmt.Errorf("path %q is not a directory", path)}
	}

	walker := opt.Walker
	if walker == nil {
		walker = FastWalker{Follow: opt.Follow}
	}

	acc := newAccumulator()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, acc, progressHook, opt.ProgressInterval)

	log.printf("[debug]: walking %s\n", path)

	start := time.Now()

	if err := walker.Walk(ctx, path, acc.add); err != nil {
		log.printf("[debug]: walk failed: %v\n", err)

		return nil, &WalkError{Path: path, Err: err}
	}

	result := acc.finalize()

	result.Elapsed = time.Since(start)

	log.printf("[debug]: %d files, %d bytes in %v\n", result.FileCount, result.TotalSize, result.Elapsed)

	return result, nil
}
