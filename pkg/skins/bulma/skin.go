// Package bulma renders forms styled for the Bulma CSS framework. Bulma
// needs no JavaScript, so the skin ships a style fragment only.
package bulma

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

// Skin implements the Bulma rendering rules.
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
		return nil, fmt.Errorf("bulma skin: configure templates: %w", err)
	}
	return &Skin{templates: engine}, nil
}

func (s *Skin) Name() string {
	return "bulma"
}

// Style returns the Bulma CSS fragment plus spacing tweaks for grouped
// controls.
func (s *Skin) Style(_ *form.Form) string {
	return readAsset("style.html")
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
