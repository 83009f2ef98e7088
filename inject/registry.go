package inject

import "fmt"

// Descriptor is the immutable (lifetime, factory) pair registered under a
// service name.
type Descriptor struct {
	Lifetime Lifetime
	create   Factory
}

// Registry is the frozen service descriptor table. It is built once by a
// Builder and never mutated afterwards; every Provider and Scope reads the
// same descriptors.
type Registry struct {
	descriptors map[string]Descriptor
	names       []string
}

// Names returns the registered service names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.descriptors[name]
	return ok
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return Descriptor{}, &ResolveError{
			Reason: fmt.Sprintf("no service registered for [%s]", name),
		}
	}
	return d, nil
}

func (r *Registry) lookup(name string) (Descriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}
