package inject

import "sync"

// Provider owns a frozen Registry and the process-lifetime cache of
// singleton instances. Singletons constructed in one scope are visible from
// every other scope created by the same provider; independent providers
// never share caches.
type Provider struct {
	registry *Registry

	mu         sync.RWMutex
	singletons map[string]any
}

// New collects registrations with build and wraps the resulting registry in
// a Provider.
//
//	provider := inject.New(func(b *inject.Builder) {
//	    b.AddSingleton("config", inject.UseConstructor(loadConfig))
//	})
func New(build func(*Builder)) *Provider {
	b := NewBuilder()
	build(b)
	return FromRegistry(b.Build())
}

// FromRegistry wraps an already-built registry in a Provider.
func FromRegistry(r *Registry) *Provider {
	return &Provider{
		registry:   r,
		singletons: make(map[string]any),
	}
}

// Registry returns the provider's descriptor table.
func (p *Provider) Registry() *Registry { return p.registry }

// BeginScope creates a scope backed by this provider's registry and
// singleton cache.
func (p *Provider) BeginScope() *Scope {
	return &Scope{provider: p, scoped: make(map[string]any)}
}

// Begin is shorthand for BeginScope().CreateContext().
func (p *Provider) Begin() *Context {
	return p.BeginScope().CreateContext()
}

func (p *Provider) singleton(name string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.singletons[name]
	return v, ok
}

func (p *Provider) storeSingleton(name string, v any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.singletons[name] = v
}
