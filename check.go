package hwcap

import "fmt"

// Check returns a *[CapabilityError] for the first name not present in the
// detection, or nil if all are present. Repeated names are checked once.
// Checking no names always succeeds.
func (d *Detection) Check(names ...string) error {
	for _, name := range uniqueNames(names) {
		if d.Registry.Contains(name) {
			continue
		}
		return &CapabilityError{
			Capability: name,
			Reason:     d.Diagnose(name),
		}
	}
	return nil
}

// Diagnose explains why name is absent from the detection.
func (d *Detection) Diagnose(name string) string {
	if d.Registry.Contains(name) {
		return "supported"
	}
	c, known := d.Arch.Lookup(name)
	switch {
	case !known:
		return fmt.Sprintf("unknown capability on %s", d.Arch.Name)
	case d.Source == SourceAll:
		return "excluded by filter"
	case !d.Vector.Contains(c.Requires):
		return fmt.Sprintf("not supported by this CPU (source %s)", d.Source)
	default:
		return "excluded by filter"
	}
}

// Require probes the native hardware from its default source and checks
// that every named capability is present.
func Require(names ...string) error {
	d, err := Probe()
	if err != nil {
		return fmt.Errorf("probe capabilities: %w", err)
	}
	return d.Check(names...)
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
