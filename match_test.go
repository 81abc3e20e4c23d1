package hwcap

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

// vectorOf returns the union of the requirements of the named table entries.
func vectorOf(t *testing.T, a *Arch, names ...string) Vector {
	t.Helper()
	var v Vector
	for _, name := range names {
		c, ok := a.Lookup(name)
		if !ok {
			t.Fatalf("%s has no capability %q", a.Name, name)
		}
		v = v.Or(c.Requires)
	}
	return v
}

func match(t *testing.T, a *Arch, raw Vector, want ...string) *Registry {
	t.Helper()
	reg := NewRegistry(0)
	if err := a.Match(reg, raw, want); err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	return reg
}

func TestMatch_Hardware(t *testing.T) {
	tests := []struct {
		name string
		raw  Vector
		want string
	}{
		{"zero vector", Vector{}, ""},
		{"base float and SIMD", vectorOf(t, AArch64, "fp", "asimd"), "fp asimd armv8.0-a"},
		{
			"armv8.1 exactly",
			vectorOf(t, AArch64, "fp", "asimd", "crc32", "atomics", "asimdrdm"),
			"fp asimd crc32 atomics asimdrdm armv8.0-a armv8.1-a",
		},
		{"hwcap2 only", Vector{0, hwcap2SVE2 | hwcap2BTI}, "sve2 bti"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := match(t, AArch64, tt.raw)
			if got := strings.Join(reg.Names(), " "); got != tt.want {
				t.Errorf("Match() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatch_Filter(t *testing.T) {
	raw := vectorOf(t, AArch64, "fp", "asimd", "sha2")

	t.Run("name absent from hardware is excluded", func(t *testing.T) {
		reg := match(t, AArch64, raw, "sha2", "sve")
		if got := reg.Names(); !slices.Equal(got, []string{"sha2"}) {
			t.Errorf("Match() = %v, want [sha2]", got)
		}
	})

	t.Run("filter keeps table order", func(t *testing.T) {
		reg := match(t, AArch64, raw, "sha2", "fp")
		if got := reg.Names(); !slices.Equal(got, []string{"fp", "sha2"}) {
			t.Errorf("Match() = %v, want [fp sha2]", got)
		}
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		reg := match(t, AArch64, raw, "FP")
		if reg.Len() != 0 {
			t.Errorf("Match() = %v, want empty", reg.Names())
		}
	})

	t.Run("empty filter means no filter", func(t *testing.T) {
		withNil := match(t, AArch64, raw)
		withEmpty := NewRegistry(0)
		if err := AArch64.Match(withEmpty, raw, []string{}); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(withNil.Names(), withEmpty.Names()) {
			t.Errorf("nil filter %v != empty filter %v", withNil.Names(), withEmpty.Names())
		}
	})
}

func TestMatch_ZeroRequirement(t *testing.T) {
	a := &Arch{
		Name: "toy",
		Table: []Capability{
			{Name: "z"},
			{Name: "x", Requires: Vector{1, 0}},
		},
	}

	for _, raw := range []Vector{{}, {1, 0}, {^uint64(0), ^uint64(0)}} {
		reg := match(t, a, raw)
		if reg.Contains("z") {
			t.Errorf("Match(%v) registered a capability that requires no bits: %v", raw, reg.Names())
		}
	}

	reg := NewRegistry(0)
	if err := a.SelectAll(reg, nil); err != nil {
		t.Fatal(err)
	}
	if got := reg.Names(); !slices.Equal(got, []string{"z", "x"}) {
		t.Errorf("SelectAll() = %v, want [z x]", got)
	}
}

func TestSelectAll(t *testing.T) {
	for _, a := range []*Arch{AArch64, X86_64, RISCV64} {
		t.Run(a.Name, func(t *testing.T) {
			reg := NewRegistry(0)
			if err := a.SelectAll(reg, nil); err != nil {
				t.Fatalf("SelectAll() error = %v", err)
			}
			if got := reg.Names(); !slices.Equal(got, a.Names()) {
				t.Errorf("SelectAll() = %v, want the whole table", got)
			}
		})
	}

	t.Run("filtered", func(t *testing.T) {
		reg := NewRegistry(0)
		if err := AArch64.SelectAll(reg, []string{"sve", "nope", "fp"}); err != nil {
			t.Fatal(err)
		}
		if got := reg.Names(); !slices.Equal(got, []string{"fp", "sve"}) {
			t.Errorf("SelectAll() = %v, want [fp sve]", got)
		}
	})
}

func TestMatch_Overflow(t *testing.T) {
	malformed := &Arch{
		Name: "malformed",
		Table: []Capability{
			{Name: "a", Requires: Vector{1, 0}},
			{Name: "b", Requires: Vector{1, 0}},
			{Name: "c", Requires: Vector{1, 0}},
			{Name: "d", Requires: Vector{1, 0}},
		},
	}

	reg := NewRegistry(3)
	err := malformed.Match(reg, Vector{1, 0}, nil)
	if !errors.Is(err, ErrTooManyCapabilities) {
		t.Fatalf("Match() error = %v, want ErrTooManyCapabilities", err)
	}
	if got := reg.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("registry after overflow = %v", got)
	}

	reg = NewRegistry(3)
	if err := malformed.SelectAll(reg, nil); !errors.Is(err, ErrTooManyCapabilities) {
		t.Fatalf("SelectAll() error = %v, want ErrTooManyCapabilities", err)
	}
}

func TestMatch_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, a := range []*Arch{AArch64, X86_64, RISCV64} {
		t.Run(a.Name, func(t *testing.T) {
			for range 200 {
				raw := Vector{rng.Uint64(), rng.Uint64()}
				more := raw.Or(Vector{rng.Uint64(), rng.Uint64()})

				small := match(t, a, raw)
				large := match(t, a, more)
				for _, name := range small.Names() {
					if !large.Contains(name) {
						t.Fatalf("%s matched for %v but not for superset %v", name, raw, more)
					}
				}
			}
		})
	}
}
