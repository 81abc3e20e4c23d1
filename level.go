package hwcap

// Level returns the highest architecture level present in reg.
//
// Levels are declared in ascending order and matching preserves table
// order, so the last level-named entry in reg is the most demanding one the
// hardware satisfies. The second result is false when reg holds no level;
// that is a valid answer, not an error.
func (a *Arch) Level(reg *Registry) (*Capability, bool) {
	if a.synthesizeLevel != nil {
		return a.synthesizeLevel(reg)
	}

	var lvl *Capability
	for _, c := range reg.caps {
		if a.IsLevel(c) {
			lvl = c
		}
	}
	return lvl, lvl != nil
}
