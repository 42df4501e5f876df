//go:build !windows

package netdrive

import "errors"

var errNativeUnsupported = errors.New("netdrive: native volume query requires windows")

// nativeSpace is only available on Windows; callers fall back to wmic.
func nativeSpace(string) (free, total uint64, err error) {
	return 0, 0, errNativeUnsupported
}
