// Package bootstrap5 renders forms styled for Bootstrap 5.3.
package bootstrap5

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

// Skin implements the Bootstrap 5 rendering rules.
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
		return nil, fmt.Errorf("bootstrap5 skin: configure templates: %w", err)
	}
	return &Skin{templates: engine}, nil
}

func (s *Skin) Name() string {
	return "bootstrap5"
}

// Style returns the Bootstrap CSS fragment (CDN link).
func (s *Skin) Style(_ *form.Form) string {
	return readAsset("style.html")
}

// Script returns the Bootstrap bundle fragment (CDN script).
func (s *Skin) Script(_ *form.Form) string {
	return readAsset("script.html")
}

// Markup renders the element sequence in order and wraps it in the form
// chrome. It never fails: unsupported elements degrade to placeholder
// comments and a chrome failure degrades to an unstyled form tag.
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
