package hxinject

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry holds the fully composed pages of an application by name.
//
// Pages are registered explicitly at startup; a name collision is a wiring
// mistake and panics, so it surfaces at registration time rather than when a
// page is requested.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]Page

	// Check, when set, is run against every Partial-backed page on Add.
	// The default rejects pages that still have required props missing.
	Check func(Page) error
}

// NewRegistry creates an empty page registry.
func NewRegistry() *Registry {
	return &Registry{
		pages: make(map[string]Page),
		Check: checkPage,
	}
}

// Add registers pages with the registry.
// Panics on a name collision or when Check rejects a page. The whole batch
// is validated first, so a panic leaves the registry unchanged.
func (reg *Registry) Add(pages ...Page) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	seen := make(map[string]bool, len(pages))
	for _, page := range pages {
		name := page.Name()
		if _, exists := reg.pages[name]; exists || seen[name] {
			panic(fmt.Sprintf("hxinject: page name collision for %q", name))
		}
		seen[name] = true
		if reg.Check != nil {
			if err := reg.Check(page); err != nil {
				panic(fmt.Sprintf("hxinject: page %q: %v", name, err))
			}
		}
	}
	for _, page := range pages {
		reg.pages[page.Name()] = page
	}
}

// Lookup returns the page registered under name.
func (reg *Registry) Lookup(name string) (Page, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	page, ok := reg.pages[name]
	return page, ok
}

// Names returns the registered page names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.pages))
	for name := range reg.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders the page registered under name.
func (reg *Registry) Render(ctx context.Context, name string) (out Markup, err error) {
	ctx, span := startSpan(ctx, "hxinject.Registry/Render", AttrPageKey.String(name))
	defer func() { endSpan(span, err) }()

	page, ok := reg.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	return page.Render(ctx)
}

// AsPage turns a component into a Page rendered with no props. It is meant
// for fully injected components:
//
//	reg.Add(hxinject.AsPage("home", hxinject.MustInject(Layout, LayoutProps{...})))
func AsPage[P any](name string, c Component[P, Markup]) Page {
	return &componentPage[P]{name: name, c: c}
}

// PageFunc turns a function into a Page.
func PageFunc(name string, fn func(ctx context.Context) (Markup, error)) Page {
	return &funcPage{name: name, fn: fn}
}

type componentPage[P any] struct {
	name string
	c    Component[P, Markup]
}

func (p *componentPage[P]) Name() string {
	return p.name
}

func (p *componentPage[P]) Render(ctx context.Context) (Markup, error) {
	var zero P
	return p.c.Render(ctx, zero)
}

// check reports whether the wrapped component still lacks required props.
func (p *componentPage[P]) check() error {
	checker, ok := p.c.(interface{ Check() error })
	if !ok {
		return nil
	}
	return checker.Check()
}

type funcPage struct {
	name string
	fn   func(ctx context.Context) (Markup, error)
}

func (p *funcPage) Name() string {
	return p.name
}

func (p *funcPage) Render(ctx context.Context) (Markup, error) {
	return p.fn(ctx)
}

func checkPage(page Page) error {
	checker, ok := page.(interface{ check() error })
	if !ok {
		return nil
	}
	return checker.check()
}
