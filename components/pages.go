package components

import (
	"context"

	"github.com/pthm/hxinject"
	"github.com/pthm/hxinject/lib/lang"
)

// Options are the values the example pages are composed from.
type Options struct {
	WelcomeMessage hxinject.Markup
	Year           int
}

// Pages composes the example pages:
//
//   - "template": the page template with content supplied at render time
//   - "override": the same template with its header overridden
//   - "full": the template re-injected with content and a 1976 footer
//   - "localized": the language-driven app
//   - "farewell": a page translated into the current language
//
// Composition fails early when a page would be missing props.
func Pages(ctx context.Context, svc *lang.Service, opts Options) ([]hxinject.Page, error) {
	tmpl, err := PageTemplate(ctx, opts.WelcomeMessage, opts.Year)
	if err != nil {
		return nil, err
	}
	full, err := FullPage(ctx, tmpl, "That's all folks", 1976)
	if err != nil {
		return nil, err
	}
	app := LocalizedApp(svc)

	return []hxinject.Page{
		hxinject.PageFunc("template", func(ctx context.Context) (hxinject.Markup, error) {
			return tmpl.Render(ctx, PageProps{Content: "adios"})
		}),
		hxinject.PageFunc("override", func(ctx context.Context) (hxinject.Markup, error) {
			return tmpl.Render(ctx, PageProps{Header: "Header overriden!", Content: "wiiiiii"})
		}),
		hxinject.AsPage[PageProps]("full", full),
		hxinject.PageFunc("localized", func(context.Context) (hxinject.Markup, error) {
			return app(), nil
		}),
		Farewell(svc, opts.Year),
	}, nil
}
