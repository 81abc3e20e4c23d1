package hwcap

// Match registers, in table order, every capability whose required bits are
// all present in raw. A capability that requires no bits is never matched
// here; only [Arch.SelectAll] selects it. When want is non-empty only capabilities named in want
// are registered; names are matched exactly and case-sensitively.
//
// Match stops at the first capability that does not fit into reg and
// returns an error wrapping [ErrTooManyCapabilities].
func (a *Arch) Match(reg *Registry, raw Vector, want []string) error {
	return a.register(reg, want, func(c *Capability) bool {
		return !c.Requires.IsZero() && raw.Contains(c.Requires)
	})
}

// SelectAll registers every table entry, bypassing the bitmask test.
// The want filter applies as in [Arch.Match].
func (a *Arch) SelectAll(reg *Registry, want []string) error {
	return a.register(reg, want, func(*Capability) bool {
		return true
	})
}

func (a *Arch) register(reg *Registry, want []string, candidate func(*Capability) bool) error {
	wanted := newNameSet(want)
	for i := range a.Table {
		c := &a.Table[i]
		if !candidate(c) || !wanted.accepts(c.Name) {
			continue
		}
		if err := reg.Append(c); err != nil {
			return err
		}
	}
	return nil
}

// nameSet is a requested-name filter. A nil set accepts everything.
type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	if len(names) == 0 {
		return nil
	}
	set := make(nameSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (s nameSet) accepts(name string) bool {
	if s == nil {
		return true
	}
	_, ok := s[name]
	return ok
}
