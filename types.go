package hwcap

import (
	"errors"
	"fmt"
	"strings"
)

// VectorWords is the number of machine words in a raw feature vector.
const VectorWords = 2

// Vector is a raw hardware feature vector, or the bits a [Capability] requires.
//
// The meaning of each word depends on the instruction-set family:
//   - aarch64: AT_HWCAP, AT_HWCAP2
//   - x86-64: CPUID leaf 1 EDX, CPUID leaf 1 ECX
//   - riscv64: AT_HWCAP (second word unused)
type Vector [VectorWords]uint64

// Contains reports whether every bit set in o is also set in v, word by word.
func (v Vector) Contains(o Vector) bool {
	for i := range v {
		if v[i]&o[i] != o[i] {
			return false
		}
	}
	return true
}

// Or returns the bitwise union of v and o.
func (v Vector) Or(o Vector) Vector {
	for i := range v {
		v[i] |= o[i]
	}
	return v
}

// IsZero reports whether no bit is set in any word.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

func (v Vector) String() string {
	words := make([]string, len(v))
	for i, w := range v {
		words[i] = fmt.Sprintf("%#x", w)
	}
	return strings.Join(words, ",")
}

// Capability is one named hardware feature or one named architecture level.
type Capability struct {
	// Name is the unique, stable identifier used for lookups and filters.
	Name string
	// Flag is the compiler-enablement token. Empty means no distinct flag.
	Flag string
	// Description is human-readable text.
	Description string
	// Requires holds the bits that must all be present in the raw vector.
	Requires Vector
}

// Source selects where the capability set comes from.
type Source int

const (
	// SourceDefault uses the family's preferred hardware source.
	SourceDefault Source = iota
	// SourceHWCAP reads the capability vector exposed by the operating system (auxv).
	SourceHWCAP
	// SourceCPUID queries the processor directly.
	SourceCPUID
	// SourceAll selects every table entry regardless of hardware.
	SourceAll
)

var sourceNames = map[Source]string{
	SourceDefault: "default",
	SourceHWCAP:   "hwcap",
	SourceCPUID:   "cpuid",
	SourceAll:     "all",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Source(%d)", s)
}

// SourceValues returns all sources in declaration order.
func SourceValues() []Source {
	return []Source{SourceDefault, SourceHWCAP, SourceCPUID, SourceAll}
}

// ParseSource maps a source name (case-insensitive) to a [Source].
func ParseSource(name string) (Source, error) {
	for _, s := range SourceValues() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return SourceDefault, fmt.Errorf("unknown source: %q", name)
}

var (
	// ErrTooManyCapabilities is returned when a [Registry] is full.
	// It signals a table or configuration defect, never a hardware condition.
	ErrTooManyCapabilities = errors.New("too many capabilities")
	// ErrUnsupportedPlatform is returned when the running OS exposes no
	// capability vector this package knows how to read.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrSourceUnsupported is returned when a [Source] is not available for
	// the instruction-set family this binary was built for.
	ErrSourceUnsupported = errors.New("source not supported on this architecture")
)

// CapabilityError represents a required capability that is not present.
type CapabilityError struct {
	Capability string
	Reason     string
	Err        error
}

func (e *CapabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capability %s: %s: %v", e.Capability, e.Reason, e.Err)
	}
	return fmt.Sprintf("capability %s: %s", e.Capability, e.Reason)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// AcquireError reports a failure to obtain the raw feature vector.
type AcquireError struct {
	Source Source
	Err    error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("acquire %s vector: %v", e.Source, e.Err)
}

func (e *AcquireError) Unwrap() error {
	return e.Err
}
