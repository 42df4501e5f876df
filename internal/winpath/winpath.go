// Package winpath provides pure helpers for Windows path forms.
//
// All functions are deterministic string transformations with no I/O, so
// they behave identically on every platform.
package winpath

import "strings"

// ToWindowsPath converts every forward slash in path to a backslash.
// It is idempotent: a path already in native form is returned unchanged.
func ToWindowsPath(path string) string {
	return strings.ReplaceAll(path, "/", `\`)
}

// ToUncPath builds a UNC path from a server name and a share-relative path.
// Leading separators on the relative path are dropped so that both
// "some/share" and "/some/share" yield `\\server\some\share`.
func ToUncPath(server, path string) string {
	path = strings.TrimLeft(path, `/\`)

	return `\\` + server + `\` + ToWindowsPath(path)
}

// DriveRoot returns the root directory of a drive letter, e.g. "Z" or "Z:"
// becomes `Z:\`.
func DriveRoot(letter string) string {
	letter = strings.TrimSuffix(letter, ":")

	return strings.ToUpper(letter) + `:\`
}

// IsDriveLetter reports whether s is a single ASCII letter, optionally
// followed by a colon.
func IsDriveLetter(s string) bool {
	s = strings.TrimSuffix(s, ":")
	if len(s) != 1 {
		return false
	}

	c := s[0]

	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
