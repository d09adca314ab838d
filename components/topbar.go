package components

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/pthm/hxinject"
	"github.com/pthm/hxinject/lib/lang"
)

// Message returns a function rendering a message key in a given language,
// translated through svc. Keys without a translation render as the key
// itself.
func Message(svc *lang.Service) func(key string, tag language.Tag) hxinject.Markup {
	return func(key string, tag language.Tag) hxinject.Markup {
		out, err := svc.Localize(key, tag)
		if err != nil {
			return hxinject.Markup(key)
		}
		return hxinject.Markup(out)
	}
}

// TopBar renders the welcome message looked up through message. It knows
// nothing about languages or keys beyond "welcome".
func TopBar(message func(key string) hxinject.Markup) hxinject.Markup {
	return "<h1>" + message("welcome") + "</h1>"
}

// App lays out a top bar and the main content. Both are resolved when App
// is called, not when it is composed.
func App(topBar, mainContent func() hxinject.Markup) hxinject.Markup {
	return "<header>" + topBar() + "</header><main>" + mainContent() + "</main>"
}

// LoremIpsum is the placeholder main content.
const LoremIpsum hxinject.Markup = "<article>Lorem ipsum...</article>"

// LocalizedApp wires App with every argument injected: the message bound to
// the current language of svc, the top bar bound to that message and fixed
// content. The result takes no arguments and renders in whatever language
// is current when it is called.
func LocalizedApp(svc *lang.Service) func() hxinject.Markup {
	myMessage := hxinject.Bind(Message(svc), svc.Current)
	myTopBar := hxinject.Apply(TopBar, myMessage)
	myContent := hxinject.Const(LoremIpsum)
	return func() hxinject.Markup {
		return App(myTopBar, myContent)
	}
}

// LocalizedFooter is Footer with its text taken from the "copyright" message
// in the current language of svc.
func LocalizedFooter(svc *lang.Service) *hxinject.Func[FooterProps, hxinject.Markup] {
	return hxinject.New("localizedFooter", func(p FooterProps) hxinject.Markup {
		out, err := svc.LocalizeWith("copyright", svc.Current(), map[string]any{"Year": p.Year})
		if err != nil {
			out = fmt.Sprintf("Copyright - %d", p.Year)
		}
		return hxinject.Markup("<footer>" + out + "</footer>")
	})
}

// Farewell is a Page rendered entirely in the current language of svc: the
// top bar, a goodbye and the localized footer for year.
func Farewell(svc *lang.Service, year int) hxinject.Page {
	footer := LocalizedFooter(svc)
	return hxinject.PageFunc("farewell", func(ctx context.Context) (hxinject.Markup, error) {
		translate := svc.Translator(ctx)
		foot, err := footer.Render(ctx, FooterProps{Year: year})
		if err != nil {
			return "", err
		}
		return Page.Render(ctx, PageProps{
			Header: TopBar(func(key string) hxinject.Markup {
				return hxinject.Markup(translate(key))
			}),
			Content: hxinject.Markup("<p>" + svc.Translate(ctx, "goodbye") + "</p>"),
			Footer:  foot,
		})
	})
}
