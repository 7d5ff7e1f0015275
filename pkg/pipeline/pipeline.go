// Package pipeline wires the validator, the document decoder and the skin
// registry into a single entry point: bytes in, rendered fragments out.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/render"
	"github.com/goliatone/go-formdata/pkg/skins/bootstrap5"
	"github.com/goliatone/go-formdata/pkg/skins/bulma"
	"github.com/goliatone/go-formdata/pkg/skins/materialize"
	"github.com/goliatone/go-formdata/pkg/validation"
)

// Format identifies the serialization of a source document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MalformedSourceError reports a document that could not even be parsed in
// its declared format. Schema violations are reported separately through
// *validation.Error.
type MalformedSourceError struct {
	Format Format
	Err    error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("pipeline: malformed %s document: %v", e.Format, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// Request is one unit of work for the pipeline.
type Request struct {
	// Source holds the serialized form document.
	Source []byte
	// Format defaults to JSON when empty.
	Format Format
	// Skin names the registered skin to render with.
	Skin string
}

// Option configures a Pipeline under construction.
type Option func(*Pipeline)

// WithValidator replaces the default validator.
func WithValidator(v *validation.Validator) Option {
	return func(p *Pipeline) {
		if v != nil {
			p.validator = v
		}
	}
}

// WithRegistry replaces the default skin registry.
func WithRegistry(registry *render.Registry) Option {
	return func(p *Pipeline) {
		if registry != nil {
			p.skins = registry
		}
	}
}

// Pipeline validates, decodes and renders canonical form documents. Safe for
// concurrent use once constructed.
type Pipeline struct {
	validator *validation.Validator
	skins     *render.Registry
}

// New builds a pipeline. Without options it compiles the embedded schema and
// registers the bootstrap5, bulma and materialize skins.
func New(options ...Option) (*Pipeline, error) {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	if p.validator == nil {
		validator, err := validation.New()
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		p.validator = validator
	}
	if p.skins == nil {
		registry, err := defaultRegistry()
		if err != nil {
			return nil, err
		}
		p.skins = registry
	}
	return p, nil
}

func defaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	b5, err := bootstrap5.New()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	bl, err := bulma.New()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	mz, err := materialize.New()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	for _, skin := range []render.Skin{b5, bl, mz} {
		if err := registry.Register(skin); err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
	}
	return registry, nil
}

// Skins lists the names the pipeline can render with.
func (p *Pipeline) Skins() []string {
	return p.skins.Names()
}

// Decode validates a source document and reconstructs the form model from it.
func (p *Pipeline) Decode(ctx context.Context, source []byte, format Format) (*form.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	raw, err := normalize(source, format)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &MalformedSourceError{Format: FormatJSON, Err: err}
	}
	if err := p.validator.Validate(decoded).Err(); err != nil {
		return nil, err
	}

	var doc form.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedSourceError{Format: FormatJSON, Err: err}
	}
	return form.FromDocument(doc)
}

// Render renders an already decoded form with the named skin.
func (p *Pipeline) Render(f *form.Form, skinName string) (render.Result, error) {
	skin, err := p.skins.Get(skinName)
	if err != nil {
		return render.Result{}, fmt.Errorf("pipeline: %w", err)
	}
	return render.Render(f, skin), nil
}

// Run decodes the request's document and renders it with the named skin.
func (p *Pipeline) Run(ctx context.Context, req Request) (render.Result, error) {
	f, err := p.Decode(ctx, req.Source, req.Format)
	if err != nil {
		return render.Result{}, err
	}
	return p.Render(f, req.Skin)
}

// normalize returns the document as JSON bytes regardless of source format.
func normalize(source []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		if !json.Valid(bytes.TrimSpace(source)) {
			return nil, &MalformedSourceError{Format: FormatJSON, Err: fmt.Errorf("invalid JSON")}
		}
		return source, nil
	case FormatYAML:
		var decoded any
		if err := yaml.Unmarshal(source, &decoded); err != nil {
			return nil, &MalformedSourceError{Format: FormatYAML, Err: err}
		}
		raw, err := json.Marshal(decoded)
		if err != nil {
			return nil, &MalformedSourceError{Format: FormatYAML, Err: err}
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("pipeline: unknown format %q", format)
	}
}
