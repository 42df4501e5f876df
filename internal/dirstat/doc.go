// Package dirstat aggregates per-file metadata for a directory tree.
//
// It walks directory trees using fastwalk for parallel traversal and
// accumulates the size, count, and metadata of every regular file below
// a root directory into a single result.
package dirstat
