// Package hxinject provides typed partial application for components that
// render markup from a props struct.
//
// A component is anything that turns a props value into output:
//
//	type Component[P, O any] interface {
//	    Render(ctx context.Context, props P) (O, error)
//	}
//
// Leaf components wrap a pure function and learn their required props from
// struct tags:
//
//	type HeaderProps struct {
//	    WelcomeMessage string `prop:"welcomeMessage,required"`
//	}
//
//	var Header = hxinject.New("header", func(p HeaderProps) hxinject.Markup {
//	    return hxinject.Markup("<header>" + p.WelcomeMessage + "</header>")
//	})
//
// # Injection
//
// Inject fixes some props of a component and returns a new component of the
// same type. At render time the fixed props are merged with the props the
// caller passes; the caller's props win:
//
//	tmpl := hxinject.MustInject(Page, PageProps{Header: header, Footer: footer})
//	out, err := tmpl.Render(ctx, PageProps{Content: "adios"})
//
// The merge is one level deep. A prop holding its zero value counts as not
// supplied, so it neither overrides a fixed prop nor satisfies a required
// one.
//
// Injected components can be injected again; fixed props accumulate:
//
//	full := hxinject.MustInject(tmpl, PageProps{Content: "That's all folks"})
//	out, err := full.Call(ctx)
//
// # Missing props
//
// A component never renders with a required prop missing. The render call
// fails with *MissingPropertyError naming the missing props instead. Go has
// no way to subtract fields from a struct type, so the check that a
// composition is complete is explicit: Partial.Check reports the props a
// zero-argument call would still lack, at composition time.
//
// # Props records
//
// Props structs are converted to ordered records (see lib/props) for
// merging. Types produced by 'hxinject generate' implement the conversion
// directly; everything else goes through msgpack.
package hxinject
