package hxinject

import (
	"context"
	"fmt"

	"github.com/pthm/hxinject/lib/props"
)

// Partial is a component with some of its props fixed.
//
// Rendering a Partial with props R renders the wrapped component with the
// fixed props merged with R, R winning where both set a prop. A Partial is
// immutable and can be rendered any number of times, shared freely, and
// injected again.
type Partial[P, O any] struct {
	name  string
	inner Component[P, O]
	fixed props.Record
}

var _ Component[struct{}, Markup] = (*Partial[struct{}, Markup])(nil)
var _ Requirer = (*Partial[struct{}, Markup])(nil)

// Inject returns c with the non-zero props of fixed set.
//
// fixed is converted to a record once, here; later changes to the value the
// caller passed have no effect. Injecting into a Partial accumulates the fixed
// props of both, the newer ones winning, and leaves the original Partial
// untouched.
//
// The returned Partial may still lack required props. Call Check to find
// out at composition time.
func Inject[P, O any](c Component[P, O], fixed P) (*Partial[P, O], error) {
	rec, err := props.Encode(fixed)
	if err != nil {
		return nil, fmt.Errorf("inject %s: %w", nameOf(c), wrapPropsError(err))
	}

	if p, ok := c.(*Partial[P, O]); ok {
		return &Partial[P, O]{
			name:  p.name,
			inner: p.inner,
			fixed: props.Merge(p.fixed, rec),
		}, nil
	}

	return &Partial[P, O]{
		name:  nameOf(c),
		inner: c,
		fixed: rec,
	}, nil
}

// MustInject is like Inject but panics if fixed cannot be encoded. It is
// meant for package-level composition where the props types are known to be
// valid.
func MustInject[P, O any](c Component[P, O], fixed P) *Partial[P, O] {
	p, err := Inject(c, fixed)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the name of the wrapped component.
func (p *Partial[P, O]) Name() string {
	return p.name
}

// Fixed returns the injected props.
func (p *Partial[P, O]) Fixed() Record {
	return p.fixed
}

// Required returns the required props of the wrapped component that the
// injected props do not cover. These must be supplied at render time.
func (p *Partial[P, O]) Required() []string {
	return p.fixed.Missing(requiredOf(p.inner))
}

// Check returns a *MissingPropertyError when rendering with no further props
// would fail, and nil when the Partial is complete.
func (p *Partial[P, O]) Check() error {
	if missing := p.Required(); len(missing) > 0 {
		return &MissingPropertyError{Component: p.name, Fields: missing}
	}
	return nil
}

// Render merges override over the injected props and renders the wrapped
// component with the result.
func (p *Partial[P, O]) Render(ctx context.Context, override P) (O, error) {
	return p.Call(ctx, override)
}

// Call renders with any number of overrides merged in order over the
// injected props; the last override wins. Call(ctx) renders with the
// injected props alone.
func (p *Partial[P, O]) Call(ctx context.Context, overrides ...P) (out O, err error) {
	ctx, span := startSpan(ctx, "hxinject.Partial/"+p.name,
		AttrComponentKey.String(p.name),
		AttrFixedKey.StringSlice(p.fixed.Names()),
		AttrOverridesKey.Int(len(overrides)))
	defer func() { endSpan(span, err) }()

	var zero O

	records := make([]props.Record, 0, len(overrides)+1)
	records = append(records, p.fixed)
	for _, o := range overrides {
		rec, err := props.Encode(o)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", p.name, wrapPropsError(err))
		}
		records = append(records, rec)
	}
	merged := props.Merge(records...)

	logger(ctx).Debug("rendering injected component",
		"component", p.name,
		"fixed", p.fixed.Names(),
		"props", merged.Names())

	full, err := props.DecodeAs[P](merged)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", p.name, wrapPropsError(err))
	}
	return p.inner.Render(ctx, full)
}
