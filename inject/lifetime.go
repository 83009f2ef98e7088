package inject

// Lifetime controls how long a resolved instance is reused.
type Lifetime int

const (
	// Transient services are constructed on every access.
	Transient Lifetime = iota + 1
	// Scoped services are constructed once per Scope.
	Scoped
	// Singleton services are constructed once per Provider.
	Singleton
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Scoped:
		return "Scoped"
	case Singleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}
