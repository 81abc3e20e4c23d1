package hwcap

import "strings"

// Compiler flag spelling.
const (
	archFlagPrefix    = "-march="
	featureFlagPrefix = "-m"
	extensionSep      = "+"
)

// CFlags renders reg into a single line of compiler flags.
//
// With a level, the line is "-march=<level>" followed by "+<flag>" for each
// capability the level does not already guarantee. Without one, every
// capability contributes "-m<flag>" and the tokens are space-separated.
// Capabilities without a flag, level entries and repeated flags are skipped
// in both forms. The result depends on reg alone.
func (a *Arch) CFlags(reg *Registry) string {
	lvl, haveLevel := a.Level(reg)

	var b strings.Builder
	if haveLevel {
		b.WriteString(archFlagPrefix)
		b.WriteString(levelFlag(lvl))
	}

	emitted := make(map[string]struct{})
	for _, c := range reg.caps {
		if c.Flag == "" || a.IsLevel(c) {
			continue
		}
		if haveLevel && lvl.Requires.Contains(c.Requires) {
			continue
		}
		if _, dup := emitted[c.Flag]; dup {
			continue
		}
		emitted[c.Flag] = struct{}{}

		if haveLevel {
			b.WriteString(extensionSep)
		} else {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(featureFlagPrefix)
		}
		b.WriteString(c.Flag)
	}

	return b.String()
}

func levelFlag(lvl *Capability) string {
	if lvl.Flag != "" {
		return lvl.Flag
	}
	return lvl.Name
}
