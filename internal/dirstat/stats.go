package dirstat

import (
	"sync"
	"time"
)

// Result holds the aggregate of one completed directory walk.
type Result struct {
	// TotalSize is the cumulative size in bytes of all files in Files.
	TotalSize int64 `json:"total_size"`
	// FileCount is the number of entries in Files.
	FileCount int64 `json:"file_count"`
	// Files maps each file path to its metadata snapshot.
	Files map[string]FileRecord `json:"files"`
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// accumulator aggregates records from concurrent walk callbacks using a mutex.
// Each Stat invocation owns exactly one accumulator; nothing is shared between
// concurrent invocations.
type accumulator struct {
	mu        sync.Mutex // Protect concurrent access
	totalSize int64
	files     map[string]FileRecord
}

func newAccumulator() *accumulator {
	return &accumulator{
		files: make(map[string]FileRecord),
	}
}

// add records a file. This operation is protected by a mutex since fastwalk
// calls the callback from multiple goroutines concurrently.
//
// A path reported twice replaces its earlier record; the size total is
// adjusted so it always equals the sum over the map.
func (a *accumulator) add(rec FileRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if prev, ok := a.files[rec.Path]; ok {
		a.totalSize -= prev.Size
	}

	a.totalSize += rec.Size
	a.files[rec.Path] = rec
}

// snapshot returns the current file count and byte total for progress
// reporting.
func (a *accumulator) snapshot() (files, bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return int64(len(a.files)), a.totalSize
}

// finalize produces the final Result from the collected data. It must only
// be called after the walk has completed.
func (a *accumulator) finalize() *Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	return &Result{
		TotalSize: a.totalSize,
		FileCount: int64(len(a.files)),
		Files:     a.files,
	}
}
