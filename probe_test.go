package hwcap

import (
	"errors"
	"slices"
	"testing"
)

func foreignArch() *Arch {
	for _, a := range []*Arch{AArch64, X86_64, RISCV64} {
		if a != Native() {
			return a
		}
	}
	return nil
}

func TestProbe_WithVector(t *testing.T) {
	raw := Vector{hwcapFP | hwcapASIMD | hwcapSHA2, 0}
	d, err := Probe(WithArch(AArch64), WithVector(raw))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if d.Source != SourceHWCAP {
		t.Errorf("Source = %v, want hwcap", d.Source)
	}
	if d.Vector != raw {
		t.Errorf("Vector = %v, want %v", d.Vector, raw)
	}
	if got, want := d.Registry.Names(), []string{"fp", "asimd", "sha2", "armv8.0-a"}; !slices.Equal(got, want) {
		t.Errorf("Registry = %v, want %v", got, want)
	}
	if lvl, ok := d.Level(); !ok || lvl.Name != "armv8.0-a" {
		t.Errorf("Level() = %v, %v", lvl, ok)
	}
	if got, want := d.CFlags(), "-march=armv8-a+sha2"; got != want {
		t.Errorf("CFlags() = %q, want %q", got, want)
	}
}

func TestProbe_FreshRegistry(t *testing.T) {
	opts := []ProbeOption{WithArch(AArch64), WithVector(Vector{hwcapFP, 0})}
	d1, err := Probe(opts...)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Probe(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if d1.Registry == d2.Registry {
		t.Error("Probe() reused a registry")
	}
	if !slices.Equal(d1.Registry.Names(), d2.Registry.Names()) {
		t.Errorf("Probe() not deterministic: %v vs %v", d1.Registry.Names(), d2.Registry.Names())
	}
}

func TestProbe_SelectAll(t *testing.T) {
	d, err := Probe(WithArch(RISCV64), WithSource(SourceAll), WithFilter("v", "g"))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if got := d.Registry.Names(); !slices.Equal(got, []string{"g", "v"}) {
		t.Errorf("Registry = %v, want [g v]", got)
	}
	if !d.Vector.IsZero() {
		t.Errorf("Vector = %v, want zero for SourceAll", d.Vector)
	}
	if lvl, ok := d.Level(); !ok || lvl.Name != "rv64gv" {
		t.Errorf("Level() = %v, %v, want rv64gv", lvl, ok)
	}
}

func TestProbe_Errors(t *testing.T) {
	t.Run("foreign family without vector", func(t *testing.T) {
		a := foreignArch()
		_, err := Probe(WithArch(a), WithSource(SourceHWCAP))
		if !errors.Is(err, ErrSourceUnsupported) {
			t.Errorf("Probe(%s) error = %v, want ErrSourceUnsupported", a.Name, err)
		}
	})

	t.Run("registry overflow", func(t *testing.T) {
		_, err := Probe(WithArch(AArch64), WithSource(SourceAll), WithLimit(5))
		if !errors.Is(err, ErrTooManyCapabilities) {
			t.Errorf("Probe() error = %v, want ErrTooManyCapabilities", err)
		}
	})

	t.Run("acquire all", func(t *testing.T) {
		if _, err := Acquire(SourceAll); !errors.Is(err, ErrSourceUnsupported) {
			t.Errorf("Acquire(all) error = %v, want ErrSourceUnsupported", err)
		}
	})
}

func TestDetection_Check(t *testing.T) {
	d, err := Probe(WithArch(AArch64), WithVector(Vector{hwcapFP | hwcapASIMD | hwcapSHA2, 0}))
	if err != nil {
		t.Fatal(err)
	}

	if err := d.Check(); err != nil {
		t.Errorf("Check() error = %v", err)
	}
	if err := d.Check("fp", "sha2", "fp", "armv8.0-a"); err != nil {
		t.Errorf("Check(present) error = %v", err)
	}

	tests := []struct {
		names  []string
		first  string
		reason string
	}{
		{[]string{"fp", "sve", "bogus"}, "sve", "not supported by this CPU (source hwcap)"},
		{[]string{"bogus", "sve"}, "bogus", "unknown capability on aarch64"},
		{[]string{"FP"}, "FP", "unknown capability on aarch64"},
	}
	for _, tt := range tests {
		err := d.Check(tt.names...)
		var ce *CapabilityError
		if !errors.As(err, &ce) {
			t.Fatalf("Check(%v) error = %v, want *CapabilityError", tt.names, err)
		}
		if ce.Capability != tt.first || ce.Reason != tt.reason {
			t.Errorf("Check(%v) = %s: %s, want %s: %s", tt.names, ce.Capability, ce.Reason, tt.first, tt.reason)
		}
		if d.Registry.HasAll(tt.names...) {
			t.Errorf("HasAll(%v) = true, want false", tt.names)
		}
	}
}

func TestDetection_Diagnose(t *testing.T) {
	hw, err := Probe(WithArch(AArch64), WithVector(Vector{hwcapFP | hwcapASIMD, 0}), WithFilter("fp"))
	if err != nil {
		t.Fatal(err)
	}
	all, err := Probe(WithArch(AArch64), WithSource(SourceAll), WithFilter("fp"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		d    *Detection
		cap  string
		want string
	}{
		{"present", hw, "fp", "supported"},
		{"supported but filtered", hw, "asimd", "excluded by filter"},
		{"unsupported", hw, "sve", "not supported by this CPU (source hwcap)"},
		{"unknown", hw, "nope", "unknown capability on aarch64"},
		{"select all filtered", all, "sve", "excluded by filter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Diagnose(tt.cap); got != tt.want {
				t.Errorf("Diagnose(%s) = %q, want %q", tt.cap, got, tt.want)
			}
		})
	}
}

func TestUniqueNames(t *testing.T) {
	got := uniqueNames([]string{"b", "a", "b", "c", "a"})
	if want := []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("uniqueNames() = %v, want %v", got, want)
	}
}
