package hxinject

import (
	"context"
	"strings"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on HTML content.
type TestResult struct {
	HTML string
}

// TestRender renders a component and returns testable output.
//
// Use this for unit tests of rendering logic when you control props
// directly:
//
//	result, err := hxinject.TestRender(Header, HeaderProps{WelcomeMessage: "Hi"})
//	if !result.HTMLContains("<header>Hi</header>") {
//	    t.Fatal("missing expected content")
//	}
func TestRender[P any](comp Component[P, Markup], props P) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext renders a component with a custom context.
//
// Use this when testing components that log, or that read values from
// context:
//
//	ctx := hxinject.LoggingContext(context.Background(), testLogger)
//	result, err := hxinject.TestRenderWithContext(ctx, comp, props)
func TestRenderWithContext[P any](ctx context.Context, comp Component[P, Markup], props P) (*TestResult, error) {
	out, err := comp.Render(ctx, props)
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: string(out)}, nil
}

// TestPage renders a Page and returns testable output.
func TestPage(page Page) (*TestResult, error) {
	out, err := page.Render(context.Background())
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: string(out)}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HTMLInOrder checks that the substrings appear in the HTML in the given
// order, without overlapping.
func (r *TestResult) HTMLInOrder(substrs ...string) bool {
	rest := r.HTML
	for _, s := range substrs {
		i := strings.Index(rest, s)
		if i < 0 {
			return false
		}
		rest = rest[i+len(s):]
	}
	return true
}

// SpyComponent wraps a component and records the props it is rendered
// with.
//
// Useful for checking what an injected component actually passes down:
//
//	spy := hxinject.NewSpy(Page)
//	tmpl := hxinject.MustInject[PageProps, hxinject.Markup](spy, fixed)
//	tmpl.Render(ctx, PageProps{Content: "x"})
//	last := spy.Calls[len(spy.Calls)-1]
type SpyComponent[P, O any] struct {
	inner Component[P, O]
	Calls []P
}

// NewSpy creates a SpyComponent that wraps a component.
func NewSpy[P, O any](inner Component[P, O]) *SpyComponent[P, O] {
	return &SpyComponent[P, O]{inner: inner}
}

// Name returns the wrapped component's name.
func (s *SpyComponent[P, O]) Name() string {
	return nameOf(s.inner)
}

// Required returns the wrapped component's required props.
func (s *SpyComponent[P, O]) Required() []string {
	return requiredOf(s.inner)
}

// Render records props and delegates to the wrapped component.
func (s *SpyComponent[P, O]) Render(ctx context.Context, props P) (O, error) {
	s.Calls = append(s.Calls, props)
	return s.inner.Render(ctx, props)
}
