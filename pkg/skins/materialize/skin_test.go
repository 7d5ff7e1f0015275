package materialize_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/render"
	"github.com/goliatone/go-formdata/pkg/skins/materialize"
)

func buildSurveyForm(t *testing.T) *form.Form {
	t.Helper()

	f := form.New("survey", form.WithAction("/survey"))
	f.AddInput("name", form.InputText, form.WithRequired(), form.WithLabel("Name"))
	f.AddTextarea("feedback", form.WithLabel("Feedback"))
	f.AddCheckbox("contact_ok", form.WithLabel("You may contact me"))
	f.AddCheckboxGroup("channels", []form.Option{
		{Value: "email", Label: "Email"},
		{Value: "phone", Label: "Phone"},
	})
	f.AddRadioGroup("rating", []form.Option{
		{Value: "good", Label: "Good"},
		{Value: "bad", Label: "Bad"},
	}, form.WithDefaultValue("good"))
	f.AddSelect("source", []form.Option{
		{Value: "web", Label: "Web"},
		{Value: "store", Label: "Store"},
	})
	f.AddDatalist("branch", []string{"North", "South"}, form.WithLabel("Branch"))
	return f
}

func TestMarkupUsesMaterializeClasses(t *testing.T) {
	skin, err := materialize.New()
	if err != nil {
		t.Fatalf("new skin: %v", err)
	}

	markup := skin.Markup(buildSurveyForm(t))

	wantFragments := []string{
		`<form id="survey" method="POST" action="/survey" class="col s12">`,
		`<div class="input-field">`,
		`class="validate" type="text" id="name" name="name"`,
		`<label for="name">Name</label>`,
		`<textarea class="materialize-textarea"`,
		`type="checkbox" class="filled-in" name="contact_ok"`,
		`name="channels[]" value="email"`,
		`type="radio" name="rating" value="good" checked`,
		`<select id="source" name="source">`,
		`<datalist id="branch_list">`,
		`<button type="submit" class="btn waves-effect waves-light">`,
		`<i class="material-icons right">send</i>`,
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(markup, fragment) {
			t.Errorf("markup missing %q\n%s", fragment, markup)
		}
	}
}

func TestScriptInitializesSelects(t *testing.T) {
	skin, err := materialize.New()
	if err != nil {
		t.Fatalf("new skin: %v", err)
	}

	result := render.Render(buildSurveyForm(t), skin)
	if !strings.Contains(result.Style, "materialize.min.css") {
		t.Fatalf("style fragment missing CDN link: %q", result.Style)
	}
	if !strings.Contains(result.Script, "M.FormSelect.init") {
		t.Fatalf("script fragment missing select init: %q", result.Script)
	}
}

func TestMarkupIsDeterministic(t *testing.T) {
	skin, err := materialize.New()
	if err != nil {
		t.Fatalf("new skin: %v", err)
	}
	f := buildSurveyForm(t)

	first := render.Render(f, skin)
	second := render.Render(f, skin)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat render differs (-first +second):\n%s", diff)
	}
}

func TestMarkupEmitsPlaceholderForUnknownKind(t *testing.T) {
	skin, err := materialize.New()
	if err != nil {
		t.Fatalf("new skin: %v", err)
	}

	f := form.New("exotic")
	f.Append(form.Element{Kind: form.ElementKind("chips"), Name: "tags"})

	markup := skin.Markup(f)
	if !strings.Contains(markup, "<!-- unsupported element type: chips -->") {
		t.Fatalf("placeholder missing:\n%s", markup)
	}
}
