package hxinject

import (
	"context"

	"github.com/a-h/templ"
)

// Component renders a props value to an output value.
//
// Render must be deterministic: the same props always produce the same
// output, and nothing outside props is read or changed. The only error a
// well-formed component returns is *MissingPropertyError.
type Component[P, O any] interface {
	Render(ctx context.Context, props P) (O, error)
}

// Renderer is implemented by components that produce templ output.
// FromRenderer adapts a Renderer into a Component.
//
// Render receives complete props and should be pure - it reads props
// and produces HTML without side effects.
//
//	func (c *Banner) Render(ctx context.Context, props BannerProps) templ.Component {
//	    return bannerTemplate(props)
//	}
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// Requirer is implemented by components that know which props they need.
// Func and Partial implement it; Inject uses it to compute what is left to
// supply.
type Requirer interface {
	Required() []string
}

// Namer is implemented by components with a name used in errors and logs.
type Namer interface {
	Name() string
}

// Page is a fully composed component: it needs no props.
type Page interface {
	Namer
	Render(ctx context.Context) (Markup, error)
}
