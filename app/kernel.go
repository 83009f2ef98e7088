package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-inject/config"
	"github.com/km-arc/go-inject/inject"
	"github.com/km-arc/go-inject/routing"
)

// Application is the top-level bootstrap. It owns the service provider and
// a root context for application-lifetime lookups; request-lifetime lookups
// go through the per-request scope middleware instead.
//
// Two services are pre-registered as singletons:
//   - "config" → *config.Config, loaded from .env
//   - "router" → *routing.Router, with the scope middleware mounted
type Application struct {
	Provider *inject.Provider

	root *inject.Context
}

// New builds the application provider. Framework registrations run first,
// so a user registrar may overwrite "config" or "router" with its own.
func New(registrars ...inject.Registrar) *Application {
	provider := inject.New(func(b *inject.Builder) {
		b.AddSingleton("config", inject.UseConstructor(func() any {
			return config.Load()
		}))
		b.AddSingleton("router", inject.UseConstructor(func() any {
			return routing.New()
		}))
		b.Apply(registrars...)
	})

	a := &Application{
		Provider: provider,
		root:     provider.Begin(),
	}

	// Mounted before user code registers routes; chi requires middleware
	// to be in place first.
	a.Router().Middleware(routing.Scoped(provider))

	return a
}

// Config resolves the "config" singleton.
func (a *Application) Config() *config.Config {
	return inject.MustResolve[*config.Config](a.root, "config")
}

// Router resolves the "router" singleton.
func (a *Application) Router() *routing.Router {
	return inject.MustResolve[*routing.Router](a.root, "router")
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// Run starts the HTTP server on APP_PORT (default 8000).
func (a *Application) Run() {
	cfg := a.Config()
	addr := ":" + cfg.App.Port
	fmt.Printf("%s listening on http://localhost%s [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)

	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
