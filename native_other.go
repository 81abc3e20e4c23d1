//go:build !amd64 && !arm64 && !riscv64

package hwcap

import (
	"fmt"
	"runtime"
)

// generic has no capability table; every source except [SourceAll] is unsupported.
var generic = &Arch{
	Name:          runtime.GOARCH,
	DefaultSource: SourceAll,
}

// Native returns the instruction-set family this binary was built for.
func Native() *Arch {
	return generic
}

func acquire(src Source) (Vector, error) {
	return Vector{}, fmt.Errorf("%s on %s: %w", src, runtime.GOARCH, ErrSourceUnsupported)
}
