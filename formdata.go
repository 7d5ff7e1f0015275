// Package formdata builds HTML form models, round-trips them through a
// schema-validated canonical document format, and renders them with
// framework-specific skins.
package formdata

import (
	"context"
	"strings"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/pipeline"
	"github.com/goliatone/go-formdata/pkg/render"
)

// Form aliases the core model type exported via the root package for
// convenience.
type Form = form.Form

// Element aliases the form element variant type.
type Element = form.Element

// Result aliases the rendered fragment triple.
type Result = render.Result

// New constructs an empty form. See the form package for the Add* operations.
func New(id string, options ...form.FormOption) *Form {
	return form.New(id, options...)
}

// Option configures the root-level convenience entry points.
type Option func(*config)

type config struct {
	pipeline *pipeline.Pipeline
}

// WithPipeline reuses an already constructed pipeline instead of building a
// fresh one per call.
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.pipeline = p
		}
	}
}

func resolve(options []Option) (*pipeline.Pipeline, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.pipeline != nil {
		return cfg.pipeline, nil
	}
	return pipeline.New()
}

// Generate validates a serialized form document and renders it with the named
// skin. It is the simplest entry point for callers that just want fragments
// from bytes.
func Generate(ctx context.Context, source []byte, format pipeline.Format, skinName string, options ...Option) (Result, error) {
	p, err := resolve(options)
	if err != nil {
		return Result{}, err
	}
	return p.Run(ctx, pipeline.Request{Source: source, Format: format, Skin: skinName})
}

// Render renders an in-memory form with the named skin from the default
// registry.
func Render(f *Form, skinName string, options ...Option) (Result, error) {
	p, err := resolve(options)
	if err != nil {
		return Result{}, err
	}
	return p.Render(f, skinName)
}

// Page composes the three fragments into a minimal standalone HTML document.
// Fragment composition is otherwise the caller's job; this covers the common
// preview case.
func Page(title string, result Result) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("  <title>")
	b.WriteString(render.Text(title))
	b.WriteString("</title>\n")
	if result.Style != "" {
		b.WriteString(result.Style)
		if !strings.HasSuffix(result.Style, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString("</head>\n<body>\n<div class=\"container\">\n")
	b.WriteString(result.Markup)
	if !strings.HasSuffix(result.Markup, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("</div>\n")
	if result.Script != "" {
		b.WriteString(result.Script)
		if !strings.HasSuffix(result.Script, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
