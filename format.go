package hwcap

import (
	"fmt"
	"io"
	"strings"
)

// WriteList writes the registered names on one line, space-separated, in
// registry order.
func WriteList(w io.Writer, reg *Registry) error {
	_, err := fmt.Fprintln(w, strings.Join(reg.Names(), " "))
	return err
}

// WriteVerbose writes one line per registered capability: the name in a
// 15-column field followed by its description.
func WriteVerbose(w io.Writer, reg *Registry) error {
	for _, c := range reg.caps {
		if _, err := fmt.Fprintf(w, "%-15s %s\n", c.Name, c.Description); err != nil {
			return err
		}
	}
	return nil
}

// String returns a human-readable summary of the detection.
func (d *Detection) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Architecture: %s\n", d.Arch.Name)
	fmt.Fprintf(&b, "Source: %s\n", d.Source)
	if d.Source != SourceAll {
		fmt.Fprintf(&b, "Vector: %s\n", d.Vector)
	}
	if lvl, ok := d.Level(); ok {
		fmt.Fprintf(&b, "Level: %s\n", lvl.Name)
	}
	if flags := d.CFlags(); flags != "" {
		fmt.Fprintf(&b, "CFLAGS: %s\n", flags)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Capabilities (%d):\n", d.Registry.Len())
	for _, c := range d.Registry.caps {
		fmt.Fprintf(&b, "  %-15s %s\n", c.Name, c.Description)
	}

	return b.String()
}

// CapabilityReport is the serializable form of a [Capability].
type CapabilityReport struct {
	Name        string `json:"name"`
	Flag        string `json:"flag,omitempty"`
	Description string `json:"description"`
	Level       bool   `json:"level,omitempty"`
}

// Report is the serializable form of a [Detection].
type Report struct {
	Arch         string             `json:"arch"`
	Source       string             `json:"source"`
	Vector       []string           `json:"vector,omitempty"`
	Level        string             `json:"level,omitempty"`
	CFlags       string             `json:"cflags"`
	Capabilities []CapabilityReport `json:"capabilities"`
}

// Report returns the serializable form of the detection.
func (d *Detection) Report() Report {
	r := Report{
		Arch:         d.Arch.Name,
		Source:       d.Source.String(),
		CFlags:       d.CFlags(),
		Capabilities: make([]CapabilityReport, 0, d.Registry.Len()),
	}
	if d.Source != SourceAll {
		for _, w := range d.Vector {
			r.Vector = append(r.Vector, fmt.Sprintf("%#x", w))
		}
	}
	if lvl, ok := d.Level(); ok {
		r.Level = lvl.Name
	}
	for _, c := range d.Registry.caps {
		r.Capabilities = append(r.Capabilities, CapabilityReport{
			Name:        c.Name,
			Flag:        c.Flag,
			Description: c.Description,
			Level:       d.Arch.IsLevel(c),
		})
	}
	return r
}
