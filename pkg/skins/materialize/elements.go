package materialize

import (
	"strings"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/render"
)

func renderElement(el form.Element) string {
	switch el.Kind {
	case form.KindInput:
		if el.InputType == form.InputCheckbox {
			return renderCheckbox(el)
		}
		return renderInput(el)
	case form.KindCheckbox:
		return renderCheckbox(el)
	case form.KindTextarea:
		return renderTextarea(el)
	case form.KindCheckboxGroup:
		return renderCheckboxGroup(el)
	case form.KindRadioGroup:
		return renderRadioGroup(el)
	case form.KindSelect:
		return renderSelect(el)
	case form.KindDatalist:
		return renderDatalist(el)
	default:
		return render.Placeholder(string(el.Kind))
	}
}

func renderInput(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"input-field\">\n")
	b.WriteString("    <input")
	b.WriteString(render.Attr("class", "validate"))
	b.WriteString(render.Attr("type", string(el.InputType)))
	b.WriteString(render.Attr("id", el.Name))
	b.WriteString(render.Attr("name", el.Name))
	if el.Placeholder != "" {
		b.WriteString(render.Attr("placeholder", el.Placeholder))
	}
	if el.Value != "" {
		b.WriteString(render.Attr("value", el.Value))
	}
	if el.MinLength != nil {
		b.WriteString(render.IntAttr("minlength", *el.MinLength))
	}
	if el.MaxLength != nil {
		b.WriteString(render.IntAttr("maxlength", *el.MaxLength))
	}
	if el.Pattern != "" {
		b.WriteString(render.Attr("pattern", el.Pattern))
	}
	b.WriteString(render.BoolAttr("multiple", el.Multiple))
	b.WriteString(render.BoolAttr("required", el.Required))
	b.WriteString(">\n")
	writeLabel(&b, el.Name, el.Label)
	b.WriteString("  </div>\n")
	return b.String()
}

func renderCheckbox(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <p>\n    <label>\n")
	b.WriteString("      <input type=\"checkbox\"")
	b.WriteString(render.Attr("class", "filled-in"))
	b.WriteString(render.Attr("name", el.Name))
	b.WriteString(render.BoolAttr("checked", el.Checked))
	b.WriteString(render.BoolAttr("required", el.Required))
	b.WriteString(">\n")
	if label := render.Label(el.Label); label != "" {
		b.WriteString("      <span>")
		b.WriteString(label)
		b.WriteString("</span>\n")
	}
	b.WriteString("    </label>\n  </p>\n")
	return b.String()
}

func renderTextarea(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"input-field\">\n")
	b.WriteString("    <textarea")
	b.WriteString(render.Attr("class", "materialize-textarea"))
	b.WriteString(render.Attr("id", el.Name))
	b.WriteString(render.Attr("name", el.Name))
	b.WriteString(render.IntAttr("rows", el.Rows))
	b.WriteString(render.IntAttr("cols", el.Cols))
	if el.Placeholder != "" {
		b.WriteString(render.Attr("placeholder", el.Placeholder))
	}
	b.WriteString(render.BoolAttr("required", el.Required))
	b.WriteString(">")
	b.WriteString(render.Text(el.Value))
	b.WriteString("</textarea>\n")
	writeLabel(&b, el.Name, el.Label)
	b.WriteString("  </div>\n")
	return b.String()
}

func renderCheckboxGroup(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"checkbox-group\">\n")
	for _, option := range el.Options {
		b.WriteString("    <p>\n      <label>\n")
		b.WriteString("        <input type=\"checkbox\"")
		b.WriteString(render.Attr("class", "filled-in"))
		b.WriteString(render.Attr("name", el.Name+"[]"))
		b.WriteString(render.Attr("value", option.Value))
		b.WriteString(render.BoolAttr("required", el.Required))
		b.WriteString(">\n        <span>")
		b.WriteString(render.Label(option.Label))
		b.WriteString("</span>\n      </label>\n    </p>\n")
	}
	b.WriteString("  </div>\n")
	return b.String()
}

func renderRadioGroup(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"radio-group\">\n")
	for _, option := range el.Options {
		b.WriteString("    <p>\n      <label>\n")
		b.WriteString("        <input type=\"radio\"")
		b.WriteString(render.Attr("name", el.Name))
		b.WriteString(render.Attr("value", option.Value))
		b.WriteString(render.BoolAttr("checked", option.Value == el.DefaultValue && el.DefaultValue != ""))
		b.WriteString(render.BoolAttr("required", el.Required))
		b.WriteString(">\n        <span>")
		b.WriteString(render.Label(option.Label))
		b.WriteString("</span>\n      </label>\n    </p>\n")
	}
	b.WriteString("  </div>\n")
	return b.String()
}

func renderSelect(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"input-field\">\n")
	b.WriteString("    <select")
	b.WriteString(render.Attr("id", el.Name))
	b.WriteString(render.Attr("name", el.Name))
	if el.Size != nil {
		b.WriteString(render.IntAttr("size", *el.Size))
	}
	b.WriteString(render.BoolAttr("multiple", el.Multiple))
	b.WriteString(render.BoolAttr("required", el.Required))
	b.WriteString(">\n")
	for _, option := range el.Options {
		b.WriteString("      <option")
		b.WriteString(render.Attr("value", option.Value))
		b.WriteString(">")
		b.WriteString(render.Text(option.Label))
		b.WriteString("</option>\n")
	}
	b.WriteString("    </select>\n")
	writeLabel(&b, el.Name, el.Label)
	b.WriteString("  </div>\n")
	return b.String()
}

func renderDatalist(el form.Element) string {
	listID := el.Name + "_list"

	var b strings.Builder
	b.WriteString("  <div class=\"input-field\">\n")
	b.WriteString("    <input")
	b.WriteString(render.Attr("class", "validate"))
	b.WriteString(render.Attr("list", listID))
	b.WriteString(render.Attr("id", el.Name))
	b.WriteString(render.Attr("name", el.Name))
	b.WriteString(render.BoolAttr("required", el.Required))
	b.WriteString(">\n")
	b.WriteString("    <datalist")
	b.WriteString(render.Attr("id", listID))
	b.WriteString(">\n")
	for _, value := range el.Values {
		b.WriteString("      <option")
		b.WriteString(render.Attr("value", value))
		b.WriteString(">\n")
	}
	b.WriteString("    </datalist>\n")
	writeLabel(&b, el.Name, el.Label)
	b.WriteString("  </div>\n")
	return b.String()
}

func writeLabel(b *strings.Builder, name, label string) {
	sanitized := render.Label(label)
	if sanitized == "" {
		return
	}
	b.WriteString("    <label")
	b.WriteString(render.Attr("for", name))
	b.WriteString(">")
	b.WriteString(sanitized)
	b.WriteString("</label>\n")
}
