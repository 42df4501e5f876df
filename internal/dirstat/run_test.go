package dirstat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file of the given size under dir.
func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent directory: %v", err)
	}

	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

func TestStatFixture(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", 100)
	writeFile(t, dir, "b.log", 104)

	result, err := Stat(context.Background(), Options{Path: dir}, nil)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if result.TotalSize != 204 {
		t.Errorf("TotalSize = %d, want 204", result.TotalSize)
	}

	if result.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", result.FileCount)
	}

	if len(result.Files) != 2 {
		t.Errorf("len(Files) = %d, want 2", len(result.Files))
	}
}

func TestStatNestedTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.txt", 1)
	writeFile(t, dir, filepath.Join("sub", "mid.txt"), 10)
	writeFile(t, dir, filepath.Join("sub", "deep", "leaf.txt"), 100)

	result, err := Stat(context.Background(), Options{Path: dir}, nil)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if result.TotalSize != 111 {
		t.Errorf("TotalSize = %d, want 111", result.TotalSize)
	}

	if result.FileCount != 3 {
		t.Errorf("FileCount = %d, want 3", result.FileCount)
	}

	// Invariants: totals match the file map exactly.
	var sum int64
	for _, rec := range result.Files {
		sum += rec.Size
	}

	if sum != result.TotalSize {
		t.Errorf("sum of file sizes = %d, TotalSize = %d", sum, result.TotalSize)
	}

	if int64(len(result.Files)) != result.FileCount {
		t.Errorf("len(Files) = %d, FileCount = %d", len(result.Files), result.FileCount)
	}
}

func TestStatEmptyDirectory(t *testing.T) {
	result, err := Stat(context.Background(), Options{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if result.TotalSize != 0 || result.FileCount != 0 || len(result.Files) != 0 {
		t.Errorf("got {%d, %d, %d entries}, want all zero",
			result.TotalSize, result.FileCount, len(result.Files))
	}
}

func TestStatNonexistentPath(t *testing.T) {
	result, err := Stat(context.Background(), Options{
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	}, nil)

	var walkErr *WalkError
	if !errors.As(err, &walkErr) {
		t.Fatalf("err = %v, want *WalkError", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}

	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
}

func TestStatFileInsteadOfDirectory(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plain.txt", 1)

	_, err := Stat(context.Background(), Options{Path: path}, nil)

	var walkErr *WalkError
	if !errors.As(err, &walkErr) {
		t.Fatalf("err = %v, want *WalkError", err)
	}
}

func TestStatEmptyPath(t *testing.T) {
	_, err := Stat(context.Background(), Options{}, nil)
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("err = %v, want ErrEmptyPath", err)
	}
}

func TestStatForwardSlashPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("sub", "f.txt"), 7)

	result, err := Stat(context.Background(), Options{
		Path: filepath.ToSlash(dir),
	}, nil)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if result.TotalSize != 7 || result.FileCount != 1 {
		t.Errorf("got {%d, %d}, want {7, 1}", result.TotalSize, result.FileCount)
	}
}

// fakeWalker feeds canned records into the accumulator without touching the
// filesystem.
type fakeWalker struct {
	recs []FileRecord
	err  error
}

func (w fakeWalker) Walk(_ context.Context, _ string, fn WalkFunc) error {
	for _, rec := range w.recs {
		fn(rec)
	}

	return w.err
}

func TestStatWithFakeWalker(t *testing.T) {
	result, err := Stat(context.Background(), Options{
		Path: t.TempDir(),
		Walker: fakeWalker{recs: []FileRecord{
			{Path: `C:\data\a`, Size: 100},
			{Path: `C:\data\b`, Size: 104},
		}},
	}, nil)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if result.TotalSize != 204 || result.FileCount != 2 {
		t.Errorf("got {%d, %d}, want {204, 2}", result.TotalSize, result.FileCount)
	}

	if rec := result.Files[`C:\data\b`]; rec.Size != 104 {
		t.Errorf("Files[b].Size = %d, want 104", rec.Size)
	}
}

func TestStatWalkFailureDiscardsPartialResult(t *testing.T) {
	cause := errors.New("access denied")

	result, err := Stat(context.Background(), Options{
		Path: t.TempDir(),
		Walker: fakeWalker{
			recs: []FileRecord{{Path: `C:\data\a`, Size: 100}},
			err:  cause,
		},
	}, nil)

	var walkErr *WalkError
	if !errors.As(err, &walkErr) {
		t.Fatalf("err = %v, want *WalkError", err)
	}

	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped cause", err)
	}

	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
}

func TestStatDuplicatePathKeepsInvariant(t *testing.T) {
	result, err := Stat(context.Background(), Options{
		Path: t.TempDir(),
		Walker: fakeWalker{recs: []FileRecord{
			{Path: `C:\data\a`, Size: 100},
			{Path: `C:\data\a`, Size: 50},
		}},
	}, nil)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if result.FileCount != 1 {
		t.Errorf("FileCount = %d, want 1", result.FileCount)
	}

	if result.TotalSize != 50 {
		t.Errorf("TotalSize = %d, want 50 (last record wins)", result.TotalSize)
	}
}

func TestStatCancelled(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 50; i++ {
		writeFile(t, dir, filepath.Join("sub", string(rune('a'+i%26)), "f.txt"), 1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Stat(ctx, Options{Path: dir}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
