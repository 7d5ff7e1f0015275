package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-formdata/pkg/form"
)

// Placeholder is the degraded fragment emitted for element kinds a skin does
// not support. Rendering stays total; a single exotic element never fails the
// pipeline.
func Placeholder(kind string) string {
	return "<!-- unsupported element type: " + html.EscapeString(kind) + " -->\n"
}

// Text escapes a string for use as element text content.
func Text(value string) string {
	return html.EscapeString(value)
}

// Attr renders a leading-space attribute with an escaped value.
func Attr(name, value string) string {
	return " " + name + `="` + html.EscapeString(value) + `"`
}

// IntAttr renders a leading-space attribute with an integer value.
func IntAttr(name string, value int) string {
	return " " + name + `="` + strconv.Itoa(value) + `"`
}

// BoolAttr renders a boolean attribute when on, nothing otherwise.
func BoolAttr(name string, on bool) string {
	if !on {
		return ""
	}
	return " " + name
}

// HeaderContext flattens a form header for template consumption.
func HeaderContext(h form.Header) map[string]any {
	return map[string]any{
		"id":      h.ID,
		"method":  string(h.Method),
		"action":  h.Action,
		"enctype": h.Enctype,
	}
}

// FallbackChrome wraps pre-rendered element markup in a plain form tag with a
// plain submit control. Skins fall back to it when their chrome template
// cannot be rendered, keeping Markup total.
func FallbackChrome(h form.Header, elements string) string {
	var b strings.Builder
	b.WriteString("<form")
	b.WriteString(Attr("id", h.ID))
	b.WriteString(Attr("method", string(h.Method)))
	if h.Action != "" {
		b.WriteString(Attr("action", h.Action))
	}
	if h.Enctype != "" {
		b.WriteString(Attr("enctype", h.Enctype))
	}
	b.WriteString(">\n")
	b.WriteString(elements)
	b.WriteString("  <button type=\"submit\">Submit</button>\n")
	b.WriteString("</form>")
	return b.String()
}
