//go:build !linux

package hwcap

// readAuxv is only implemented for Linux, whose AT_HWCAP layout the tables follow.
func readAuxv() (hwcap, hwcap2 uint64, err error) {
	return 0, 0, ErrUnsupportedPlatform
}
