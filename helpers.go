package hxinject

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxinject/lib/props"
)

// MustRender renders c with p and panics on error. Use it when building
// fixed props from other components at composition time:
//
//	tmpl := hxinject.MustInject(Page, PageProps{
//	    Header: hxinject.MustRender(ctx, Header, HeaderProps{WelcomeMessage: "Welcome!"}),
//	})
func MustRender[P, O any](ctx context.Context, c Component[P, O], p P) O {
	out, err := c.Render(ctx, p)
	if err != nil {
		panic(err)
	}
	return out
}

// Write renders c with p and writes the markup to w. Nothing is written
// when rendering fails.
func Write[P any](ctx context.Context, w io.Writer, c Component[P, Markup], p P) error {
	out, err := c.Render(ctx, p)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(out))
	return err
}

// RenderString renders a templ component to Markup.
func RenderString(ctx context.Context, t templ.Component) (Markup, error) {
	var buf bytes.Buffer
	if err := t.Render(ctx, &buf); err != nil {
		return "", err
	}
	return Markup(buf.String()), nil
}

// Templ returns a templ component that renders c with p when it is itself
// rendered, so injected components can be placed inside templ templates.
// The markup is written as-is.
func Templ[P any](c Component[P, Markup], p P) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Write(ctx, w, c, p)
	})
}

// FromRenderer adapts a templ Renderer into a Component producing Markup.
// Required props are checked before Render is called, as for Func.
func FromRenderer[P any](name string, r Renderer[P]) Component[P, Markup] {
	return &templComponent[P]{
		name:     name,
		required: props.RequiredFor[P](),
		r:        r,
	}
}

type templComponent[P any] struct {
	name     string
	required []string
	r        Renderer[P]
}

func (c *templComponent[P]) Name() string {
	return c.name
}

func (c *templComponent[P]) Required() []string {
	return c.required
}

func (c *templComponent[P]) Render(ctx context.Context, p P) (Markup, error) {
	if err := checkRequired(ctx, c.name, c.required, p); err != nil {
		return "", err
	}
	out, err := RenderString(ctx, c.r.Render(ctx, p))
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}
	return out, nil
}
