package agents

import "slices"

// Registry holds the tool functions exposed to the model, keyed by name.
// It is built once at agent construction and read-only afterwards; the
// response-handling layer has no dynamic registration.
type Registry struct {
	funcs map[string]*Func
}

// NewRegistry builds a Registry from an ordered sequence of functions.
// Duplicate names keep the last occurrence; this mirrors keying a map by
// name and is documented behavior, not an error.
func NewRegistry(funcs ...*Func) *Registry {
	m := make(map[string]*Func, len(funcs))
	for _, f := range funcs {
		if f != nil {
			m[f.Name] = f
		}
	}
	return &Registry{funcs: m}
}

// NewRegistryFromMap builds a Registry from an explicit name→function
// mapping. Map keys win over each Func's own Name field so the two
// construction forms agree on lookup.
func NewRegistryFromMap(funcs map[string]*Func) *Registry {
	m := make(map[string]*Func, len(funcs))
	for name, f := range funcs {
		if f == nil {
			continue
		}
		if f.Name != name {
			clone := *f
			clone.Name = name
			f = &clone
		}
		m[name] = f
	}
	return &Registry{funcs: m}
}

// Get returns the function registered under name, or (nil, false).
func (r *Registry) Get(name string) (*Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Names returns all registered names sorted for deterministic order, so
// generated stubs and schemas come out identical regardless of how the
// registry was constructed.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered functions.
func (r *Registry) Len() int { return len(r.funcs) }

// validate checks every registered descriptor. Agent constructors call
// this so authoring defects abort setup instead of surfacing
// mid-conversation.
func (r *Registry) validate() error {
	for _, name := range r.Names() {
		if err := r.funcs[name].validate(); err != nil {
			return err
		}
	}
	return nil
}
