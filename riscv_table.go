package hwcap

import "strings"

// riscvExt returns the AT_HWCAP bit of a single-letter ISA extension.
func riscvExt(letter byte) uint64 {
	return 1 << (letter - 'a')
}

var (
	riscvI = riscvExt('i')
	riscvE = riscvExt('e')
	// riscvG is the general-purpose base, IMAFD.
	riscvG = riscvI | riscvExt('m') | riscvExt('a') | riscvExt('f') | riscvExt('d')
)

// RISCV64 is the 64-bit RISC-V family. Its level is not a table entry but
// an ISA string such as "rv64gcv" built from the matched extensions; the
// "rv64" prefix is the spelling compilers accept for -march.
var RISCV64 = &Arch{
	Name:          "riscv64",
	LevelPrefix:   "rv64",
	DefaultSource: SourceHWCAP,
	Table: []Capability{
		{"i", "", "integer base ISA", Vector{riscvI, 0}},
		{"e", "", "reduced integer base ISA", Vector{riscvE, 0}},
		{"m", "", "integer multiplication and division", Vector{riscvExt('m'), 0}},
		{"a", "", "atomics", Vector{riscvExt('a'), 0}},
		{"f", "", "single-precision floating-point", Vector{riscvExt('f'), 0}},
		{"d", "", "double-precision floating-point", Vector{riscvExt('d'), 0}},
		{"g", "", "general-purpose base ISA", Vector{riscvG, 0}},
		{"q", "", "quad-precision floating-point", Vector{riscvExt('q'), 0}},
		{"c", "", "16-bit compressed instructions", Vector{riscvExt('c'), 0}},
		{"b", "", "bit manipulation", Vector{riscvExt('b'), 0}},
		{"k", "", "cryptography extensions", Vector{riscvExt('k'), 0}},
		{"j", "", "dynamic languages", Vector{riscvExt('j'), 0}},
		{"p", "", "packed-SIMD extensions", Vector{riscvExt('p'), 0}},
		{"v", "", "vector extensions", Vector{riscvExt('v'), 0}},
	},
	synthesizeLevel: riscvISAString,
}

// riscvISAString builds the ISA string level from the registered
// extensions. The base is g when present, else i, else e; without any base
// there is no level. Extensions already implied by the base are omitted.
func riscvISAString(reg *Registry) (*Capability, bool) {
	covered := riscvI | riscvE

	var b strings.Builder
	b.WriteString("rv64")
	switch {
	case reg.Contains("g"):
		b.WriteByte('g')
		covered |= riscvG
	case reg.Contains("i"):
		b.WriteByte('i')
	case reg.Contains("e"):
		b.WriteByte('e')
	default:
		return nil, false
	}

	var requires Vector
	for _, c := range reg.caps {
		requires = requires.Or(c.Requires)
		bits := c.Requires[0]
		if bits != 0 && bits&covered == bits {
			continue
		}
		b.WriteString(c.Name)
	}

	isa := b.String()
	return &Capability{
		Name:        isa,
		Flag:        isa,
		Description: "ISA string",
		Requires:    requires,
	}, true
}
