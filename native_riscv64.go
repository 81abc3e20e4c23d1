//go:build riscv64

package hwcap

import "fmt"

// Native returns the instruction-set family this binary was built for.
func Native() *Arch {
	return RISCV64
}

func acquire(src Source) (Vector, error) {
	if src != SourceHWCAP {
		return Vector{}, fmt.Errorf("%s: %w", src, ErrSourceUnsupported)
	}
	hwcap, _, err := readAuxv()
	if err != nil {
		return Vector{}, &AcquireError{Source: src, Err: err}
	}
	return Vector{hwcap, 0}, nil
}
