//go:build arm64

package hwcap

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Native returns the instruction-set family this binary was built for.
func Native() *Arch {
	return AArch64
}

func acquire(src Source) (Vector, error) {
	switch src {
	case SourceHWCAP:
		hwcap, hwcap2, err := readAuxv()
		if err != nil {
			return Vector{}, &AcquireError{Source: src, Err: err}
		}
		return Vector{hwcap, hwcap2}, nil
	case SourceCPUID:
		return runtimeVector(), nil
	default:
		return Vector{}, fmt.Errorf("%s: %w", src, ErrSourceUnsupported)
	}
}

// runtimeBits maps the Go runtime's view of the CPU back onto HWCAP bits.
// golang.org/x/sys/cpu reads the ID registers directly where the OS does
// not publish hwcaps, so this covers a subset of the table.
var runtimeBits = []struct {
	word int
	bit  uint64
	has  *bool
}{
	{0, hwcapFP, &cpu.ARM64.HasFP},
	{0, hwcapASIMD, &cpu.ARM64.HasASIMD},
	{0, hwcapEVTSTRM, &cpu.ARM64.HasEVTSTRM},
	{0, hwcapAES, &cpu.ARM64.HasAES},
	{0, hwcapPMULL, &cpu.ARM64.HasPMULL},
	{0, hwcapSHA1, &cpu.ARM64.HasSHA1},
	{0, hwcapSHA2, &cpu.ARM64.HasSHA2},
	{0, hwcapCRC32, &cpu.ARM64.HasCRC32},
	{0, hwcapATOMICS, &cpu.ARM64.HasATOMICS},
	{0, hwcapFPHP, &cpu.ARM64.HasFPHP},
	{0, hwcapASIMDHP, &cpu.ARM64.HasASIMDHP},
	{0, hwcapCPUID, &cpu.ARM64.HasCPUID},
	{0, hwcapASIMDRDM, &cpu.ARM64.HasASIMDRDM},
	{0, hwcapJSCVT, &cpu.ARM64.HasJSCVT},
	{0, hwcapFCMA, &cpu.ARM64.HasFCMA},
	{0, hwcapLRCPC, &cpu.ARM64.HasLRCPC},
	{0, hwcapDCPOP, &cpu.ARM64.HasDCPOP},
	{0, hwcapSHA3, &cpu.ARM64.HasSHA3},
	{0, hwcapSM3, &cpu.ARM64.HasSM3},
	{0, hwcapSM4, &cpu.ARM64.HasSM4},
	{0, hwcapASIMDDP, &cpu.ARM64.HasASIMDDP},
	{0, hwcapSHA512, &cpu.ARM64.HasSHA512},
	{0, hwcapSVE, &cpu.ARM64.HasSVE},
	{0, hwcapASIMDFHM, &cpu.ARM64.HasASIMDFHM},
	{0, hwcapDIT, &cpu.ARM64.HasDIT},
	{1, hwcap2SVE2, &cpu.ARM64.HasSVE2},
	{1, hwcap2I8MM, &cpu.ARM64.HasI8MM},
}

func runtimeVector() Vector {
	var v Vector
	for _, rb := range runtimeBits {
		if *rb.has {
			v[rb.word] |= rb.bit
		}
	}
	return v
}
