// Package parse extracts tokens from lines of Windows command output.
//
// The matchers are stateless and deterministic: each one applies a single
// regular expression to one line and returns the first match. Absence of a
// match is reported through the boolean return, never as an error.
package parse

import (
	"regexp"
	"strconv"
)

var (
	driveLetterRe = regexp.MustCompile(`([A-Z]):`)
	statusRe      = regexp.MustCompile(`^\s*(\S+)`)
	uncPathRe     = regexp.MustCompile(`(\\\\[^\s]+)`)
	digitsRe      = regexp.MustCompile(`^\s*(\d+)`)
)

// DriveLetter returns the first uppercase drive letter followed by a colon
// in line, e.g. "Z" from "OK           Z:        \\server\share".
func DriveLetter(line string) (string, bool) {
	m := driveLetterRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// StatusToken returns the leading word token of line, used for the
// connection status column of `net use` output.
func StatusToken(line string) (string, bool) {
	m := statusRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// UNCPath returns the first token starting with a double backslash and
// continuing up to the next whitespace.
func UNCPath(line string) (string, bool) {
	m := uncPathRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// Digits parses the leading run of digits in line, used for numeric report
// lines such as wmic free-space output.
func Digits(line string) (uint64, bool) {
	m := digitsRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
