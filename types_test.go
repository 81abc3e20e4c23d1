package hwcap

import (
	"errors"
	"strings"
	"testing"
)

func TestVector_Contains(t *testing.T) {
	tests := []struct {
		name string
		v, o Vector
		want bool
	}{
		{"zero requirement", Vector{}, Vector{}, true},
		{"zero requirement on nonzero vector", Vector{0xff, 0}, Vector{}, true},
		{"exact", Vector{0b11, 0b1}, Vector{0b11, 0b1}, true},
		{"subset", Vector{0b111, 0}, Vector{0b101, 0}, true},
		{"missing bit in first word", Vector{0b110, 0}, Vector{0b101, 0}, false},
		{"missing bit in second word", Vector{0xff, 0}, Vector{0x1, 0x1}, false},
		{"bits spread across words", Vector{0, 1 << 44}, Vector{0, 1 << 44}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Contains(tt.o); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tt.v, tt.o, got, tt.want)
			}
		})
	}
}

func TestVector_Or(t *testing.T) {
	got := Vector{0b01, 0}.Or(Vector{0b10, 0b1})
	if want := (Vector{0b11, 0b1}); got != want {
		t.Errorf("Or() = %v, want %v", got, want)
	}
}

func TestVector_IsZero(t *testing.T) {
	if !(Vector{}).IsZero() {
		t.Error("Vector{}.IsZero() = false")
	}
	if (Vector{0, 1}).IsZero() {
		t.Error("Vector{0, 1}.IsZero() = true")
	}
}

func TestVector_String(t *testing.T) {
	if got, want := (Vector{0x3, 0}).String(), "0x3,0x0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{SourceDefault, "default"},
		{SourceHWCAP, "hwcap"},
		{SourceCPUID, "cpuid"},
		{SourceAll, "all"},
		{Source(42), "Source(42)"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParseSource(t *testing.T) {
	for _, s := range SourceValues() {
		for _, name := range []string{s.String(), strings.ToUpper(s.String())} {
			got, err := ParseSource(name)
			if err != nil {
				t.Fatalf("ParseSource(%q) error = %v", name, err)
			}
			if got != s {
				t.Errorf("ParseSource(%q) = %v, want %v", name, got, s)
			}
		}
	}

	_, err := ParseSource("ciao")
	if err == nil {
		t.Fatal("ParseSource(ciao) expected error")
	}
	if !strings.Contains(err.Error(), `unknown source: "ciao"`) {
		t.Errorf("error %q missing source context", err)
	}
}

func TestCapabilityError(t *testing.T) {
	t.Run("without wrapped error", func(t *testing.T) {
		err := &CapabilityError{Capability: "sve", Reason: "not supported by this CPU (source hwcap)"}
		if got, want := err.Error(), "capability sve: not supported by this CPU (source hwcap)"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if err.Unwrap() != nil {
			t.Error("Unwrap() != nil")
		}
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := &CapabilityError{Capability: "sve", Reason: "probe failed", Err: ErrUnsupportedPlatform}
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Error("errors.Is(err, ErrUnsupportedPlatform) = false")
		}
		if got, want := err.Error(), "capability sve: probe failed: unsupported platform"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestAcquireError(t *testing.T) {
	err := &AcquireError{Source: SourceHWCAP, Err: ErrUnsupportedPlatform}
	if got, want := err.Error(), "acquire hwcap vector: unsupported platform"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var ae *AcquireError
	if !errors.As(error(err), &ae) || ae.Source != SourceHWCAP {
		t.Error("errors.As(err, *AcquireError) failed")
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Error("errors.Is(err, ErrUnsupportedPlatform) = false")
	}
}
