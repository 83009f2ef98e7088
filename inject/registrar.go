package inject

// Registrar is a grouped unit of registrations. A package can expose one to
// wire all of its services into a builder at once:
//
//	func Registrar() inject.Registrar {
//	    return inject.RegistrarFunc(func(b *inject.Builder) {
//	        b.AddSingleton("cache", inject.UseConstructor(newCache))
//	        b.AddScoped("session", inject.UseFactory(newSession))
//	    })
//	}
type Registrar interface {
	Register(b *Builder)
}

// RegistrarFunc adapts a plain function to the Registrar interface.
type RegistrarFunc func(b *Builder)

func (f RegistrarFunc) Register(b *Builder) { f(b) }
