package hxinject

import (
	"context"
	"fmt"

	"github.com/pthm/hxinject/lib/props"
)

// Markup is rendered HTML. It is not escaped or checked in any way.
type Markup string

// String returns the markup as a plain string.
func (m Markup) String() string {
	return string(m)
}

// Func is a leaf component: a named pure function from props to output.
//
// Func checks the required props of P before calling the function, so the
// function itself can assume they are set.
//
//	type FooterProps struct {
//	    Year int `prop:"year,required"`
//	}
//
//	var Footer = hxinject.New("footer", func(p FooterProps) hxinject.Markup {
//	    return hxinject.Markup(fmt.Sprintf("<footer>Copyright - %d</footer>", p.Year))
//	})
type Func[P, O any] struct {
	name     string
	render   func(P) O
	required []string
}

var _ Component[struct{}, Markup] = (*Func[struct{}, Markup])(nil)
var _ Requirer = (*Func[struct{}, Markup])(nil)

// New creates a leaf component with the given name.
//
// The required props are read from P's prop tags (or from RequiredProps when
// P implements RequiredLister) once, here.
func New[P, O any](name string, render func(P) O) *Func[P, O] {
	return &Func[P, O]{
		name:     name,
		render:   render,
		required: props.RequiredFor[P](),
	}
}

// Name returns the component's name.
func (f *Func[P, O]) Name() string {
	return f.name
}

// Required returns the names of the props that must be set.
func (f *Func[P, O]) Required() []string {
	return f.required
}

// Render checks that every required prop is set and calls the render
// function. A missing prop fails with *MissingPropertyError and the function
// is not called.
func (f *Func[P, O]) Render(ctx context.Context, p P) (O, error) {
	if err := checkRequired(ctx, f.name, f.required, p); err != nil {
		var zero O
		return zero, err
	}
	return f.render(p), nil
}

// checkRequired returns a *MissingPropertyError when p lacks any of the
// required props.
func checkRequired(ctx context.Context, name string, required []string, p any) error {
	if len(required) == 0 {
		return nil
	}
	rec, err := props.Encode(p)
	if err != nil {
		return fmt.Errorf("%s: %w", name, wrapPropsError(err))
	}
	missing := rec.Missing(required)
	if len(missing) == 0 {
		return nil
	}
	logger(ctx).Debug("component is missing required props",
		"component", name,
		"missing", missing)
	return &MissingPropertyError{Component: name, Fields: missing}
}

// nameOf returns the component's name, or its type when it has none.
func nameOf(c any) string {
	if n, ok := c.(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}

// requiredOf returns the props c needs, asking c first and falling back to
// the tags of P.
func requiredOf[P, O any](c Component[P, O]) []string {
	if r, ok := c.(Requirer); ok {
		return r.Required()
	}
	return props.RequiredFor[P]()
}
