//go:build amd64

package hwcap

import "fmt"

// Native returns the instruction-set family this binary was built for.
func Native() *Arch {
	return X86_64
}

// cpuid executes the CPUID instruction. Implemented in cpuid_amd64.s.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

func acquire(src Source) (Vector, error) {
	switch src {
	case SourceCPUID:
		maxLeaf, _, _, _ := cpuid(0, 0)
		if maxLeaf < 1 {
			return Vector{}, nil
		}
		_, _, ecx, edx := cpuid(1, 0)
		return Vector{uint64(edx), uint64(ecx)}, nil
	case SourceHWCAP:
		// On x86 the kernel publishes CPUID leaf 1 EDX as AT_HWCAP.
		hwcap, _, err := readAuxv()
		if err != nil {
			return Vector{}, &AcquireError{Source: src, Err: err}
		}
		return Vector{hwcap & 0xffffffff, 0}, nil
	default:
		return Vector{}, fmt.Errorf("%s: %w", src, ErrSourceUnsupported)
	}
}
