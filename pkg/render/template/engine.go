// Package template wraps the pongo2 engine behind the small surface the
// skins need: render a named template from an embedded bundle.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine renders templates from an fs.FS bundle, caching compiled templates.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

// New constructs an Engine over the provided template bundle.
func New(files fs.FS) (*Engine, error) {
	if files == nil {
		return nil, errors.New("template: template bundle is required")
	}
	return &Engine{
		set:   pongo2.NewSet("formdata", pongo2.NewFSLoader(files)),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template with the given context.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("template: engine is nil")
	}

	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}

	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("template: execute %q: %w", name, err)
	}
	return out, nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("template: load %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}
