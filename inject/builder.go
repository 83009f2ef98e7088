package inject

// Builder collects service registrations before they are frozen into a
// Registry. Registering a name twice overwrites the earlier descriptor but
// keeps its position in the name order.
type Builder struct {
	descriptors map[string]Descriptor
	names       []string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{descriptors: make(map[string]Descriptor)}
}

// AddSingleton registers target under name with one instance per provider.
func (b *Builder) AddSingleton(name string, target Target) *Builder {
	return b.add(name, Singleton, target)
}

// AddScoped registers target under name with one instance per scope.
func (b *Builder) AddScoped(name string, target Target) *Builder {
	return b.add(name, Scoped, target)
}

// AddTransient registers target under name with a new instance per access.
func (b *Builder) AddTransient(name string, target Target) *Builder {
	return b.add(name, Transient, target)
}

// Apply runs each registrar against the builder.
func (b *Builder) Apply(regs ...Registrar) *Builder {
	for _, reg := range regs {
		reg.Register(b)
	}
	return b
}

func (b *Builder) add(name string, lifetime Lifetime, target Target) *Builder {
	if _, exists := b.descriptors[name]; !exists {
		b.names = append(b.names, name)
	}
	b.descriptors[name] = Descriptor{Lifetime: lifetime, create: target.create}
	return b
}

// Build freezes the collected descriptors into a Registry. The builder can
// keep being mutated afterwards without affecting registries already built.
func (b *Builder) Build() *Registry {
	descriptors := make(map[string]Descriptor, len(b.descriptors))
	for name, d := range b.descriptors {
		descriptors[name] = d
	}
	names := make([]string, len(b.names))
	copy(names, b.names)
	return &Registry{descriptors: descriptors, names: names}
}
