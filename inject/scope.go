package inject

import "fmt"

// Scope is a resolution boundary. It shares the provider's registry and
// singleton cache with its sibling scopes but owns a private scoped-instance
// cache and the resolution stack used for the circularity and
// lifetime-escalation checks.
//
// A scope lives as long as the caller keeps a reference to it; there is no
// close step. It is not safe for concurrent use: resolution is a
// synchronous depth-first call chain on one goroutine, which is exactly
// what the resolution stack tracks.
type Scope struct {
	provider *Provider
	scoped   map[string]any
	stack    []string

	// Name is an optional debug label included in error traces.
	Name string
}

// CreateContext returns the lazy dependency view over this scope. Optional
// exotic mappings are merged in order (later entries win); their contents
// bypass the registry entirely.
func (s *Scope) CreateContext(exotic ...Exotic) *Context {
	var merged Exotic
	if len(exotic) > 0 {
		merged = make(Exotic)
		for _, e := range exotic {
			for name, v := range e {
				merged[name] = v
			}
		}
	}
	return &Context{scope: s, exotic: merged}
}

// resolve returns the instance registered under name, constructing it on a
// cache miss. ctx is handed to the factory so its own lookups recurse
// through this same scope.
func (s *Scope) resolve(name string, ctx *Context) (any, error) {
	// A name already on the stack means a factory ended up requesting
	// itself, directly or through its dependencies.
	for i, active := range s.stack {
		if active == name {
			return nil, &ResolveError{
				Scope:  s.Name,
				Path:   trace(s.stack, map[int]bool{i: true}, name, true),
				Reason: "circular resolution",
			}
		}
	}

	desc, ok := s.provider.registry.lookup(name)
	if !ok {
		var path []string
		if len(s.stack) > 0 {
			path = trace(s.stack, nil, name, true)
		}
		return nil, &ResolveError{
			Scope:  s.Name,
			Path:   path,
			Reason: fmt.Sprintf("no service registered for [%s]", name),
		}
	}

	// Cache hits return without touching the stack, so neither check below
	// re-runs for them. A singleton that slipped past the escalation check
	// once is served from cache unvalidated from then on.
	switch desc.Lifetime {
	case Singleton:
		if v, ok := s.provider.singleton(name); ok {
			return v, nil
		}
	case Scoped:
		if v, ok := s.scoped[name]; ok {
			return v, nil
		}
	}

	// A singleton outlives every scope, so it must never capture a scoped
	// instance anywhere below it in the chain. Walk the stack from the most
	// recent entry backward; the nearest singleton is the offender.
	if desc.Lifetime == Scoped {
		for i := len(s.stack) - 1; i >= 0; i-- {
			up, ok := s.provider.registry.lookup(s.stack[i])
			if ok && up.Lifetime == Singleton {
				return nil, &ResolveError{
					Scope:  s.Name,
					Path:   trace(s.stack, map[int]bool{i: true}, name, true),
					Reason: fmt.Sprintf("singleton [%s] depends on scoped [%s]", s.stack[i], name),
				}
			}
		}
	}

	v, err := s.construct(name, desc, ctx)
	if err != nil {
		// Propagated as-is: a failure from deeper in the chain, or the
		// factory's own error, which is never wrapped in a ResolveError.
		return nil, err
	}

	switch desc.Lifetime {
	case Singleton:
		s.provider.storeSingleton(name, v)
	case Scoped:
		s.scoped[name] = v
	}
	return v, nil
}

// construct runs the factory with name pushed onto the resolution stack.
// The pop is deferred so the stack stays consistent when a factory returns
// an error or panics — a later, unrelated resolution must not be flagged as
// circular.
func (s *Scope) construct(name string, desc Descriptor, ctx *Context) (any, error) {
	s.stack = append(s.stack, name)
	defer func() { s.stack = s.stack[:len(s.stack)-1] }()
	return desc.create(ctx)
}
