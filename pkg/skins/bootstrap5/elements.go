package bootstrap5

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
	b.WriteString("  <div class=\"mb-3\">\n")
	writeLabel(&b, el.Name, el.Label, "form-label")

	b.WriteString("    <input")
	b.WriteString(render.Attr("type", string(el.InputType)))
	b.WriteString(render.Attr("class", "form-control"))
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
	b.WriteString(">\n  </div>\n")
	return b.String()
}

func renderCheckbox(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"mb-3 form-check\">\n")
	b.WriteString("    <input type=\"checkbox\" class=\"form-check-input\"")
	b.WriteString(render.Attr("id", el.Name))
	b.WriteString(render.Attr("name", el.Name))
	b.WriteString(render.BoolAttr("checked", el.Checked))
	b.WriteString(render.BoolAttr("required", el.Required))
	b.WriteString(">\n")
	if label := render.Label(el.Label); label != "" {
		b.WriteString("    <label class=\"form-check-label\"")
		b.WriteString(render.Attr("for", el.Name))
		b.WriteString(">")
		b.WriteString(label)
		b.WriteString("</label>\n")
	}
	b.WriteString("  </div>\n")
	return b.String()
}

func renderTextarea(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"mb-3\">\n")
	writeLabel(&b, el.Name, el.Label, "form-label")

	b.WriteString("    <textarea")
	b.WriteString(render.Attr("class", "form-control"))
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
	b.WriteString("</textarea>\n  </div>\n")
	return b.String()
}

func renderCheckboxGroup(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"mb-3\">\n")
	for _, option := range el.Options {
		id := el.Name + "_" + option.Value
		b.WriteString("    <div class=\"form-check\">\n")
		b.WriteString("      <input class=\"form-check-input\" type=\"checkbox\"")
		b.WriteString(render.Attr("name", el.Name+"[]"))
		b.WriteString(render.Attr("value", option.Value))
		b.WriteString(render.Attr("id", id))
		b.WriteString(render.BoolAttr("required", el.Required))
		b.WriteString(">\n")
		b.WriteString("      <label class=\"form-check-label\"")
		b.WriteString(render.Attr("for", id))
		b.WriteString(">")
		b.WriteString(render.Label(option.Label))
		b.WriteString("</label>\n    </div>\n")
	}
	b.WriteString("  </div>\n")
	return b.String()
}

func renderRadioGroup(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"mb-3\">\n")
	for _, option := range el.Options {
		id := el.Name + "_" + option.Value
		b.WriteString("    <div class=\"form-check\">\n")
		b.WriteString("      <input class=\"form-check-input\" type=\"radio\"")
		b.WriteString(render.Attr("name", el.Name))
		b.WriteString(render.Attr("value", option.Value))
		b.WriteString(render.Attr("id", id))
		b.WriteString(render.BoolAttr("checked", option.Value == el.DefaultValue && el.DefaultValue != ""))
		b.WriteString(render.BoolAttr("required", el.Required))
		b.WriteString(">\n")
		b.WriteString("      <label class=\"form-check-label\"")
		b.WriteString(render.Attr("for", id))
		b.WriteString(">")
		b.WriteString(render.Label(option.Label))
		b.WriteString("</label>\n    </div>\n")
	}
	b.WriteString("  </div>\n")
	return b.String()
}

func renderSelect(el form.Element) string {
	var b strings.Builder
	b.WriteString("  <div class=\"mb-3\">\n")
	b.WriteString("    <select")
	b.WriteString(render.Attr("class", "form-select"))
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
	b.WriteString("    </select>\n  </div>\n")
	return b.String()
}

func renderDatalist(el form.Element) string {
	listID := el.Name + "_list"

	var b strings.Builder
	b.WriteString("  <div class=\"mb-3\">\n")
	writeLabel(&b, el.Name, el.Label, "form-label")

	b.WriteString("    <input class=\"form-control\"")
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
	b.WriteString("    </datalist>\n  </div>\n")
	return b.String()
}

func writeLabel(b *strings.Builder, name, label, class string) {
	sanitized := render.Label(label)
	if sanitized == "" {
		return
	}
	b.WriteString("    <label")
	b.WriteString(render.Attr("for", name))
	b.WriteString(render.Attr("class", class))
	b.WriteString(">")
	b.WriteString(sanitized)
	b.WriteString("</label>\n")
}
