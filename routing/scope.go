package routing

import (
	"context"
	"net/http"

	"github.com/km-arc/go-inject/inject"
)

type scopeCtxKey struct{}

// Scoped returns middleware that opens a fresh resolution scope for every
// request, so services registered as Scoped live exactly as long as the
// request. The scope's dependency context is stored in the request context
// and retrieved with FromRequest.
//
//	router.Middleware(routing.Scoped(provider))
//	router.Get("/users", func(w http.ResponseWriter, r *http.Request) {
//	    session := inject.MustResolve[*Session](routing.FromRequest(r), "session")
//	    ...
//	})
func Scoped(provider *inject.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := provider.BeginScope()
			scope.Name = r.Method + " " + r.URL.Path

			ctx := scope.CreateContext(inject.Exotic{
				"request": r,
			})

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), scopeCtxKey{}, ctx),
			))
		})
	}
}

// FromRequest returns the request's dependency context. It panics when the
// Scoped middleware is not mounted — that is a wiring mistake, not a
// runtime condition.
func FromRequest(r *http.Request) *inject.Context {
	ctx, ok := r.Context().Value(scopeCtxKey{}).(*inject.Context)
	if !ok {
		panic("routing: no resolution scope on request; mount routing.Scoped first")
	}
	return ctx
}
