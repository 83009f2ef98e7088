package inject

// Factory builds a service instance from a dependency context. The context
// it receives is the same one the top-level caller holds, so lookups inside
// a factory share the caller's caching semantics.
type Factory func(*Context) (any, error)

// Target is the registration-time description of how a service is built.
// The caller states the shape explicitly — factory, zero-argument
// constructor, or pre-built value — and every shape is normalized into a
// single Factory here. There is no runtime shape inspection.
type Target struct {
	create Factory
}

// UseFactory registers a factory that receives the dependency context.
func UseFactory(fn Factory) Target {
	return Target{create: fn}
}

// UseConstructor registers a constructor that takes no dependencies.
//
//	b.AddSingleton("clock", inject.UseConstructor(func() any { return NewClock() }))
func UseConstructor(fn func() any) Target {
	return Target{create: func(*Context) (any, error) { return fn(), nil }}
}

// UseValue registers a pre-built value.
func UseValue(v any) Target {
	return Target{create: func(*Context) (any, error) { return v, nil }}
}
