// Package render defines the skin contract and the dispatch that turns a
// form into style, markup and script fragments. Rendering is pure: a skin
// never mutates the form, never fails, and produces byte-identical output for
// identical input.
package render

import "github.com/goliatone/go-formdata/pkg/form"

// Result carries the three text fragments a skin produces. Composing them
// into a full document (doctype, head, body wrapper) is the caller's job.
type Result struct {
	Style  string
	Markup string
	Script string
}

// Skin renders a form into framework-specific markup. Markup is the only
// mandatory capability; skins opt into style and script fragments by also
// implementing StyleProvider and ScriptProvider.
type Skin interface {
	Name() string
	Markup(f *form.Form) string
}

// StyleProvider is implemented by skins that ship a style fragment.
type StyleProvider interface {
	Style(f *form.Form) string
}

// ScriptProvider is implemented by skins that ship a script fragment.
type ScriptProvider interface {
	Script(f *form.Form) string
}

// Render produces all three fragments for a form. Style and script default
// to empty when the skin does not provide them.
func Render(f *form.Form, skin Skin) Result {
	result := Result{Markup: skin.Markup(f)}
	if provider, ok := skin.(StyleProvider); ok {
		result.Style = provider.Style(f)
	}
	if provider, ok := skin.(ScriptProvider); ok {
		result.Script = provider.Script(f)
	}
	return result
}
