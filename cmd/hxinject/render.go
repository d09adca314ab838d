package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/pthm/hxinject"
	"github.com/pthm/hxinject/components"
	"github.com/pthm/hxinject/lib/lang"
)

// runRender composes the example pages into a registry and writes the
// requested ones to out. Logs go to errOut.
func runRender(ctx context.Context, args []string, out, errOut io.Writer) error {
	var switchTo string
	var names []string
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			switchTo = v
		} else {
			names = append(names, arg)
		}
	}

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	log := cfg.Logger(errOut)
	ctx = hxinject.LoggingContext(ctx, log)

	tag, err := cfg.Tag()
	if err != nil {
		return err
	}
	svc, err := lang.Default(tag, lang.WithLogger(log))
	if err != nil {
		return err
	}

	pages, err := components.Pages(ctx, svc, components.Options{
		WelcomeMessage: hxinject.Markup(cfg.WelcomeMessage),
		Year:           cfg.Year,
	})
	if err != nil {
		return err
	}
	reg := hxinject.NewRegistry()
	reg.Add(pages...)

	// The pages are composed; a language switch now shows in the ones
	// bound to the current language.
	if switchTo != "" {
		next, err := language.Parse(switchTo)
		if err != nil {
			return fmt.Errorf("invalid --lang %q: %w", switchTo, err)
		}
		svc.SetCurrent(next)
		log.Debug("switched language", "lang", next.String())
	}

	if len(names) == 0 {
		names = reg.Names()
	}
	for _, name := range names {
		html, err := reg.Render(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s:\n%s\n\n", name, html)
	}
	return nil
}
