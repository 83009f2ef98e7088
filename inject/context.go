package inject

import "fmt"

// Exotic is a caller-supplied set of ad-hoc entries merged into a context.
// Entries bypass the registry and the scope's caches entirely: a plain
// value behaves like a singleton (the same value every access), a Computed
// is evaluated on every access.
type Exotic map[string]any

// Computed marks an exotic entry that is re-evaluated per access.
type Computed func(*Context) any

// Context is the lazy, name-indexed facade over a scope. It holds no cache
// of its own — every access delegates to the owning scope, which does the
// caching. The same context value is handed to every factory in a
// resolution chain, so a deeply nested dependency and the root caller share
// identical caching semantics.
type Context struct {
	scope  *Scope
	exotic Exotic
}

// Get resolves name: exotic entries first, then the scope.
func (c *Context) Get(name string) (any, error) {
	if name == "" {
		return nil, &ResolveError{
			Scope:  c.scope.Name,
			Reason: "service name must not be empty",
		}
	}
	if v, ok := c.exotic[name]; ok {
		if fn, ok := v.(Computed); ok {
			return fn(c), nil
		}
		return v, nil
	}
	return c.scope.resolve(name, c)
}

// MustGet is Get, panicking on error.
func (c *Context) MustGet(name string) any {
	v, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name would resolve to something — an exotic entry or
// a registered service. It constructs nothing.
func (c *Context) Has(name string) bool {
	if _, ok := c.exotic[name]; ok {
		return true
	}
	return c.scope.provider.registry.Has(name)
}

// All resolves every registered service plus the exotic entries into a
// plain map, in registry order. Exotic entries shadow registered names.
func (c *Context) All() (map[string]any, error) {
	out := make(map[string]any)
	for _, name := range c.scope.provider.registry.Names() {
		v, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	for name := range c.exotic {
		if _, done := out[name]; done {
			continue
		}
		v, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// ── Generics helpers ─────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result.
//
//	// Instead of: clock := ctx.MustGet("clock").(*Clock)
//	// Write:      clock, err := inject.Resolve[*Clock](ctx, "clock")
func Resolve[T any](c *Context, name string) (T, error) {
	var zero T
	v, err := c.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &ResolveError{
			Scope:  c.scope.Name,
			Reason: fmt.Sprintf("[%s] resolved to %T, want %T", name, v, zero),
		}
	}
	return typed, nil
}

// MustResolve is Resolve, panicking on error.
func MustResolve[T any](c *Context, name string) T {
	v, err := Resolve[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}
