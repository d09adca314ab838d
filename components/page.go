//go:generate go run github.com/pthm/hxinject/cmd/hxinject generate .

// Package components holds the example page built from injected components:
// a header, a footer and a content block assembled by Page, and a topbar
// driven by the current language.
package components

import (
	"context"
	"fmt"

	"github.com/pthm/hxinject"
)

// HeaderProps are the props of Header.
//
//hxinject:props
type HeaderProps struct {
	WelcomeMessage hxinject.Markup `prop:"welcomeMessage,required"`
}

// Header renders the page header.
var Header = hxinject.New("header", func(p HeaderProps) hxinject.Markup {
	return "<header>" + p.WelcomeMessage + "</header>"
})

// FooterProps are the props of Footer.
//
//hxinject:props
type FooterProps struct {
	Year int `prop:"year,required"`
}

// Footer renders the copyright footer.
var Footer = hxinject.New("footer", func(p FooterProps) hxinject.Markup {
	return hxinject.Markup(fmt.Sprintf("<footer>Copyright - %d</footer>", p.Year))
})

// ContentProps are the props of Content.
//
//hxinject:props
type ContentProps struct {
	Content hxinject.Markup `prop:"content,required"`
}

// Content wraps the main content of a page.
var Content = hxinject.New("content", func(p ContentProps) hxinject.Markup {
	return "<main>" + p.Content + "</main>"
})

// PageProps are the props of Page. Each one is markup rendered by another
// component, or a literal.
//
//hxinject:props
type PageProps struct {
	Header  hxinject.Markup `prop:"header,required"`
	Content hxinject.Markup `prop:"content,required"`
	Footer  hxinject.Markup `prop:"footer,required"`
}

// Page lays out a header, content and footer.
var Page = hxinject.New("page", func(p PageProps) hxinject.Markup {
	return "<div>" + p.Header + p.Content + p.Footer + "</div>"
})

// PageTemplate is Page with the header and footer fixed and the content left
// open.
func PageTemplate(ctx context.Context, welcome hxinject.Markup, year int) (*hxinject.Partial[PageProps, hxinject.Markup], error) {
	header, err := Header.Render(ctx, HeaderProps{WelcomeMessage: welcome})
	if err != nil {
		return nil, err
	}
	footer, err := Footer.Render(ctx, FooterProps{Year: year})
	if err != nil {
		return nil, err
	}
	return hxinject.Inject(Page, PageProps{Header: header, Footer: footer})
}

// FullPage injects content and a new footer into a template, leaving a page
// that needs no props at all.
func FullPage(ctx context.Context, tmpl *hxinject.Partial[PageProps, hxinject.Markup], content hxinject.Markup, year int) (*hxinject.Partial[PageProps, hxinject.Markup], error) {
	footer, err := Footer.Render(ctx, FooterProps{Year: year})
	if err != nil {
		return nil, err
	}
	full, err := hxinject.Inject[PageProps, hxinject.Markup](tmpl, PageProps{Content: content, Footer: footer})
	if err != nil {
		return nil, err
	}
	if err := full.Check(); err != nil {
		return nil, err
	}
	return full, nil
}
