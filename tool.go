package agents

import (
	"context"
	"fmt"
)

// Param is the declared descriptor of one tool function parameter.
// Type is a tag resolved against the supported type table (see typeNames);
// Description is surfaced in generated schemas and stub docstrings.
type Param struct {
	Name        string
	Type        string
	Description string
	Default     any
	HasDefault  bool
}

// Func describes a host-supplied tool function: a name, an ordered
// parameter list, a documentation string, and the callable itself.
// The callable receives the call arguments keyed by parameter name and
// must return a JSON-serializable value for the JSON dispatch strategy.
// Func values are immutable after registration.
type Func struct {
	Name   string
	Doc    string
	Params []Param
	Fn     func(ctx context.Context, args map[string]any) (any, error)
}

// validate checks the descriptor for authoring defects. Called at agent
// construction so bad descriptors fail loudly before any turn is handled.
func (f *Func) validate() error {
	if f == nil {
		return ErrNilFunc
	}
	if f.Name == "" {
		return ErrUnnamedFunc
	}
	if f.Fn == nil {
		return fmt.Errorf("function %s: %w", f.Name, ErrNilFunc)
	}
	for _, p := range f.Params {
		if p.Name == "" {
			return fmt.Errorf("function %s: %w", f.Name, ErrUnnamedParam)
		}
		if _, ok := typeNames[p.Type]; !ok {
			return fmt.Errorf("function %s, parameter %s: type %q: %w", f.Name, p.Name, p.Type, ErrUnknownType)
		}
	}
	return nil
}

// invoke calls the host function, reducing panics to errors so a
// misbehaving tool can never unwind past the agent boundary.
func (f *Func) invoke(ctx context.Context, args map[string]any) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("function %s panicked: %v", f.Name, p)
		}
	}()
	return f.Fn(ctx, args)
}
