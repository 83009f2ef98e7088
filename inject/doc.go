// Package inject provides a named-service dependency injection container
// with three lifetimes: Singleton, Scoped and Transient.
//
// # Overview
//
// Services are registered by name with an explicit lifetime and a target
// (factory, zero-argument constructor, or pre-built value). Nothing is
// constructed at registration time: a service is built the first time a
// context is asked for it, and its own dependencies are pulled from the
// same context inside the factory, depth-first.
//
// # Lifetimes
//
//   - Singleton — one instance per Provider, shared by every scope.
//   - Scoped    — one instance per Scope.
//   - Transient — a new instance on every access.
//
// # Usage
//
//	provider := inject.New(func(b *inject.Builder) {
//	    b.AddSingleton("clock", inject.UseConstructor(func() any {
//	        return NewSystemClock()
//	    }))
//	    b.AddScoped("session", inject.UseFactory(func(ctx *inject.Context) (any, error) {
//	        clock := inject.MustResolve[*SystemClock](ctx, "clock")
//	        return NewSession(clock), nil
//	    }))
//	    b.AddTransient("greeter", inject.UseFactory(func(ctx *inject.Context) (any, error) {
//	        return NewGreeter(inject.MustResolve[*Session](ctx, "session")), nil
//	    }))
//	})
//
//	scope := provider.BeginScope()
//	ctx := scope.CreateContext()
//	greeter := inject.MustResolve[*Greeter](ctx, "greeter")
//
// A fresh scope gets fresh Scoped instances while Singletons stay shared;
// provider.Begin() is shorthand for BeginScope().CreateContext().
//
// # Misuse detection
//
// Two classes of wiring mistakes are caught during resolution and reported
// as *ResolveError with the full resolution path:
//
//   - circular resolution — a factory that ends up requesting a name that
//     is already under construction: "a -> [b] -> c -> [b]";
//   - lifetime escalation — a singleton whose chain reaches a scoped
//     service. The singleton would capture the scoped instance and leak it
//     across scope boundaries, so the scoped access fails instead.
//
// # Exotic entries
//
// CreateContext accepts ad-hoc entries that bypass the registry:
//
//	ctx := scope.CreateContext(inject.Exotic{
//	    "request": req,                                            // plain value
//	    "now":     inject.Computed(func(*inject.Context) any {     // per access
//	        return time.Now()
//	    }),
//	})
//
// An exotic entry shadows a registered service of the same name; the
// registered factory is never invoked.
//
// # Grouped registration
//
// Packages can expose a Registrar to wire all of their services at once:
//
//	b.Apply(cachepkg.Registrar(), mailpkg.Registrar())
package inject
