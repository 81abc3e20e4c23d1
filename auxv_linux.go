//go:build linux

package hwcap

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Auxiliary vector tags (include/uapi/linux/auxvec.h).
const (
	atHWCAP  = 16
	atHWCAP2 = 26
)

// readAuxv returns the AT_HWCAP and AT_HWCAP2 words of the running process.
// A runtime that exposes no auxiliary vector yields zero words, not an error.
func readAuxv() (hwcap, hwcap2 uint64, err error) {
	auxv, err := unix.Auxv()
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	for _, kv := range auxv {
		switch kv[0] {
		case atHWCAP:
			hwcap = uint64(kv[1])
		case atHWCAP2:
			hwcap2 = uint64(kv[1])
		}
	}
	return hwcap, hwcap2, nil
}
