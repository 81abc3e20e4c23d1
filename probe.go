package hwcap

import "fmt"

// probeConfig holds the configuration for a probe operation.
type probeConfig struct {
	arch   *Arch
	source Source
	want   []string
	limit  int
	vector *Vector // synthetic raw vector, skips acquisition
}

// ProbeOption configures what [Probe] selects and from where.
type ProbeOption func(*probeConfig)

// WithSource selects where the capability set comes from.
func WithSource(src Source) ProbeOption {
	return func(c *probeConfig) {
		c.source = src
	}
}

// WithFilter restricts the result to the named capabilities.
// Names are matched exactly; an empty list means no restriction.
func WithFilter(names ...string) ProbeOption {
	return func(c *probeConfig) {
		c.want = append(c.want, names...)
	}
}

// WithArch probes against a family other than [Native].
// Only [SourceAll] and [WithVector] make sense for a foreign family.
func WithArch(a *Arch) ProbeOption {
	return func(c *probeConfig) {
		c.arch = a
	}
}

// WithVector matches against v instead of reading the hardware.
// This is primarily for testing and for replaying vectors captured elsewhere.
func WithVector(v Vector) ProbeOption {
	return func(c *probeConfig) {
		c.vector = &v
	}
}

// WithLimit bounds the registry. Non-positive means [MaxCapabilities].
func WithLimit(n int) ProbeOption {
	return func(c *probeConfig) {
		c.limit = n
	}
}

// Detection is the outcome of one probe: the family, the source actually
// used, the raw vector read from it, and the registry built from that vector.
type Detection struct {
	Arch     *Arch
	Source   Source
	Vector   Vector
	Registry *Registry
}

// Probe acquires the raw feature vector once and matches it against the
// capability table. Every call builds a fresh [Registry]; nothing is cached.
//
// With no options it reads the native hardware from the family's default
// source and registers every supported capability.
func Probe(opts ...ProbeOption) (*Detection, error) {
	cfg := &probeConfig{arch: Native()}
	for _, opt := range opts {
		opt(cfg)
	}

	d := &Detection{
		Arch:     cfg.arch,
		Source:   cfg.arch.resolveSource(cfg.source),
		Registry: NewRegistry(cfg.limit),
	}

	if d.Source == SourceAll {
		if err := d.Arch.SelectAll(d.Registry, cfg.want); err != nil {
			return nil, err
		}
		return d, nil
	}

	switch {
	case cfg.vector != nil:
		d.Vector = *cfg.vector
	case d.Arch != Native():
		return nil, fmt.Errorf("probe %s hardware from %s: %w", d.Arch.Name, Native().Name, ErrSourceUnsupported)
	default:
		v, err := acquire(d.Source)
		if err != nil {
			return nil, err
		}
		d.Vector = v
	}

	if err := d.Arch.Match(d.Registry, d.Vector, cfg.want); err != nil {
		return nil, err
	}
	return d, nil
}

// Acquire reads the raw feature vector of the running CPU from src.
// [SourceAll] has no raw vector and yields [ErrSourceUnsupported].
func Acquire(src Source) (Vector, error) {
	src = Native().resolveSource(src)
	if src == SourceAll {
		return Vector{}, fmt.Errorf("%s: %w", src, ErrSourceUnsupported)
	}
	return acquire(src)
}

// Level returns the highest architecture level detected.
func (d *Detection) Level() (*Capability, bool) {
	return d.Arch.Level(d.Registry)
}

// CFlags returns the compiler flag line for the detected capabilities.
func (d *Detection) CFlags() string {
	return d.Arch.CFlags(d.Registry)
}
