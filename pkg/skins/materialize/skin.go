// Package materialize renders forms styled for Materialize CSS. Selects
// require the framework's JavaScript initializer, so the skin ships both
// style and script fragments.
package materialize

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/render"
	"github.com/goliatone/go-formdata/pkg/render/template"
)

// Option configures the skin before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate chrome template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Skin implements the Materialize rendering rules.
type Skin struct {
	templates *template.Engine
}

// New constructs the skin applying any provided options.
func New(options ...Option) (*Skin, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine, err := template.New(cfg.templateFS)
	if err != nil {
		return nil, fmt.Errorf("materialize skin: configure templates: %w", err)
	}
	return &Skin{templates: engine}, nil
}

func (s *Skin) Name() string {
	return "materialize"
}

// Style returns the Materialize CSS fragment (CDN link plus icon font).
func (s *Skin) Style(_ *form.Form) string {
	return readAsset("style.html")
}

// Script returns the Materialize JS fragment including the select
// initializer.
func (s *Skin) Script(_ *form.Form) string {
	return readAsset("script.html")
}

// Markup renders the element sequence in order and wraps it in the form
// chrome.
func (s *Skin) Markup(f *form.Form) string {
	var b strings.Builder
	for _, element := range f.Elements() {
		b.WriteString(renderElement(element))
	}

	out, err := s.templates.Render("templates/form.tmpl", map[string]any{
		"header":   render.HeaderContext(f.Header()),
		"elements": b.String(),
	})
	if err != nil {
		return render.FallbackChrome(f.Header(), b.String())
	}
	return out
}
