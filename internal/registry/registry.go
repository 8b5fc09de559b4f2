package registry

import (
	"sort"
)

// Module is the interface that all element modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered element handlers for a single
// application instance.
type Registry struct {
	ElementRegistry map[string]*RegisteredElement
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		ElementRegistry: make(map[string]*RegisteredElement),
	}
}

// Lookup returns the handler registered for an element kind.
func (r *Registry) Lookup(kind string) (*RegisteredElement, bool) {
	el, ok := r.ElementRegistry[kind]
	return el, ok
}

// Kinds returns the registered element kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.ElementRegistry))
	for k := range r.ElementRegistry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
