package hwcap

import "fmt"

// MaxCapabilities bounds a [Registry] created with a non-positive limit.
// Every shipped table is well below it.
const MaxCapabilities = 100

// Registry is the ordered, bounded set of capabilities selected for one run.
//
// Entries keep the relative order of the capability table they came from.
// A Registry is append-only; it is never shared between runs.
type Registry struct {
	caps  []*Capability
	limit int
}

// NewRegistry creates an empty registry holding at most limit capabilities.
// A non-positive limit means [MaxCapabilities].
func NewRegistry(limit int) *Registry {
	if limit <= 0 {
		limit = MaxCapabilities
	}
	return &Registry{
		caps:  make([]*Capability, 0, limit),
		limit: limit,
	}
}

// Append adds c at the end. It fails with [ErrTooManyCapabilities] when the
// registry is already full; nothing is added in that case.
func (r *Registry) Append(c *Capability) error {
	if len(r.caps) >= r.limit {
		return fmt.Errorf("register %s: %w (limit %d)", c.Name, ErrTooManyCapabilities, r.limit)
	}
	r.caps = append(r.caps, c)
	return nil
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int {
	return len(r.caps)
}

// Contains reports whether a capability named name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Lookup returns the registered capability named name.
func (r *Registry) Lookup(name string) (*Capability, bool) {
	for _, c := range r.caps {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// HasAll reports whether every name is registered.
// It is vacuously true for no names.
func (r *Registry) HasAll(names ...string) bool {
	for _, name := range names {
		if !r.Contains(name) {
			return false
		}
	}
	return true
}

// Capabilities returns the registered capabilities in order.
// The slice is a copy; the capabilities themselves are shared with the table.
func (r *Registry) Capabilities() []*Capability {
	out := make([]*Capability, len(r.caps))
	copy(out, r.caps)
	return out
}

// Names returns the registered capability names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.caps))
	for i, c := range r.caps {
		names[i] = c.Name
	}
	return names
}
