// Package lang keeps the current language of an application and translates
// message keys into it.
//
// The current language lives in a cell.Cell. Components never hold the
// language itself: they hold Service.Current (or a translator bound to it),
// so a SetCurrent between two renders changes the output of the second.
package lang

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/pthm/hxinject/lib/cell"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog lists the message files embedded in the package.
var Catalog = []string{
	"locales/messages.en.toml",
	"locales/messages.fr.toml",
	"locales/messages.es.toml",
}

// Service translates message keys into the current language.
type Service struct {
	bundle  *i18n.Bundle
	current *cell.Cell[language.Tag]
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for failed translations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.log = logger
	}
}

// NewService loads the TOML message files from fsys and starts with
// defaultLang as the current language. defaultLang is also the bundle's
// fallback when a message has no translation in the requested language.
//
// Files are named after their language, as go-i18n expects:
// messages.en.toml, messages.fr.toml.
func NewService(defaultLang language.Tag, fsys fs.FS, files []string, opts ...Option) (*Service, error) {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("error loading message file %q: %w", file, err)
		}
	}

	s := &Service{
		bundle:  bundle,
		current: cell.New(defaultLang),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Default returns a Service over the embedded English, French and Spanish
// catalog.
func Default(defaultLang language.Tag, opts ...Option) (*Service, error) {
	return NewService(defaultLang, locales, Catalog, opts...)
}

// Bundle returns the underlying message bundle.
func (s *Service) Bundle() *i18n.Bundle {
	return s.bundle
}

// Languages returns the languages the bundle holds messages for.
func (s *Service) Languages() []language.Tag {
	return s.bundle.LanguageTags()
}

// Current returns the current language. Pass the method value, not its
// result, to anything that renders later.
func (s *Service) Current() language.Tag {
	return s.current.Get()
}

// SetCurrent changes the current language.
func (s *Service) SetCurrent(tag language.Tag) {
	s.current.Set(tag)
}

// Localize translates key into tag. Falls back to the default language when
// tag has no translation, and fails when no language has the key.
func (s *Service) Localize(key string, tag language.Tag) (string, error) {
	return s.LocalizeWith(key, tag, nil)
}

// LocalizeWith is Localize with template data for messages such as
// "Copyright - {{.Year}}".
func (s *Service) LocalizeWith(key string, tag language.Tag, data map[string]any) (string, error) {
	localizer := i18n.NewLocalizer(s.bundle, tag.String())
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return "", fmt.Errorf("error localizing %q into %s: %w", key, tag, err)
	}
	return out, nil
}

// Translate translates key into the current language. A key that cannot be
// translated is logged and returned as is.
func (s *Service) Translate(ctx context.Context, key string) string {
	out, err := s.Localize(key, s.Current())
	if err != nil {
		s.log.WarnContext(ctx, "could not translate message",
			"key", key,
			"lang", s.Current().String(),
			"error", err)
		return key
	}
	return out
}

// Translator returns Translate bound to ctx, for components that take a
// func(key string) string.
func (s *Service) Translator(ctx context.Context) func(key string) string {
	return func(key string) string {
		return s.Translate(ctx, key)
	}
}
