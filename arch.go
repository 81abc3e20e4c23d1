package hwcap

import "strings"

// Arch describes one instruction-set family: its capability table, how
// architecture levels are named, and which source it reads by default.
//
// Exactly one Arch is relevant to a given binary; see [Native].
type Arch struct {
	// Name is the family name, e.g. "aarch64".
	Name string
	// LevelPrefix marks table entries that are architecture levels.
	LevelPrefix string
	// Table is the ordered capability table. Levels are declared in
	// ascending order after the features they are built from.
	Table []Capability
	// DefaultSource is used when [SourceDefault] is requested.
	DefaultSource Source

	// synthesizeLevel replaces the last-level-wins scan for families whose
	// level is derived from the matched set rather than declared.
	synthesizeLevel func(reg *Registry) (*Capability, bool)
}

// IsLevel reports whether c is an architecture level of this family.
func (a *Arch) IsLevel(c *Capability) bool {
	return a.LevelPrefix != "" && strings.HasPrefix(c.Name, a.LevelPrefix)
}

// Lookup returns the table entry named name.
func (a *Arch) Lookup(name string) (*Capability, bool) {
	for i := range a.Table {
		if a.Table[i].Name == name {
			return &a.Table[i], true
		}
	}
	return nil, false
}

// Names returns all table entry names in table order.
func (a *Arch) Names() []string {
	names := make([]string, len(a.Table))
	for i := range a.Table {
		names[i] = a.Table[i].Name
	}
	return names
}

func (a *Arch) resolveSource(src Source) Source {
	if src == SourceDefault {
		return a.DefaultSource
	}
	return src
}
