package form_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdata/pkg/form"
)

func buildKitchenSink() *form.Form {
	f := form.New("kitchen_sink",
		form.WithMethod(form.MethodGet),
		form.WithAction("/submit"),
		form.WithEnctype("multipart/form-data"),
	)
	f.AddInput("username", form.InputText,
		form.WithRequired(),
		form.WithLabel("Username"),
		form.WithPlaceholder("pick a name"),
		form.WithValue("ada"),
		form.WithMinLength(3),
		form.WithMaxLength(32),
		form.WithPattern("[a-z]+"),
	)
	f.AddEmailInput("contact", form.WithRequired(), form.WithMultiple())
	f.AddURLInput("homepage", form.WithLabel("Homepage"))
	f.AddTextarea("bio", form.WithRows(6), form.WithCols(60), form.WithPlaceholder("about you"))
	f.AddCheckbox("subscribe", form.WithLabel("Subscribe"), form.WithChecked())
	f.AddInput("terms", form.InputCheckbox, form.WithRequired(), form.WithLabel("Terms"))
	f.AddSelect("country", []form.Option{
		{Value: "us", Label: "United States"},
		{Value: "uy", Label: "Uruguay"},
	}, form.WithRequired(), form.WithMultiple(), form.WithSize(4), form.WithLabel("Country"))
	f.AddRadioGroup("plan", []form.Option{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Pro"},
	}, form.WithDefaultValue("free"), form.WithLabel("Plan"))
	f.AddCheckboxGroup("interests", []form.Option{
		{Value: "go", Label: "Go"},
		{Value: "music", Label: "Music"},
	}, form.WithMinSelect(1), form.WithMaxSelect(2), form.WithLabel("Interests"))
	f.AddDatalist("editor", []string{"vim", "emacs", "acme"}, form.WithLabel("Editor"))
	return f
}

func TestRoundTripThroughJSON(t *testing.T) {
	original := buildKitchenSink()
	want := original.Document()

	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal form: %v", err)
	}

	var doc form.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	decoded, err := form.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	if diff := cmp.Diff(want, decoded.Document()); diff != "" {
		t.Fatalf("round-trip document mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupLabelsSurviveRoundTrip(t *testing.T) {
	payload := []byte(`{
	  "form": {
	    "form_header": {"form_id": "t", "method": "POST", "action": "", "enctype": ""},
	    "form_element_list": [
	      {"type": "select", "name": "country", "required": false, "label": "Country",
	       "multiple": false, "options": [{"value": "us", "label": "United States"}]},
	      {"type": "radio_group", "name": "plan", "required": false, "label": "Plan",
	       "options": [{"value": "free", "label": "Free"}]},
	      {"type": "checkbox_group", "name": "interests", "required": false, "label": "Interests",
	       "min_select": 0, "options": [{"value": "go", "label": "Go"}]}
	    ]
	  }
	}`)

	var doc form.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	decoded, err := form.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	for i, want := range []string{"Country", "Plan", "Interests"} {
		if got := decoded.Elements()[i].Label; got != want {
			t.Fatalf("element %d label = %q, want %q", i, got, want)
		}
	}

	for _, record := range decoded.Document().Form.Elements {
		if record.Label == "" {
			t.Fatalf("re-serialized %s lost its label", record.Type)
		}
	}
}

func TestFromDocumentNormalizesMethodCase(t *testing.T) {
	doc := form.Document{}
	doc.Form.Header = form.HeaderRecord{ID: "t", Method: "post", Action: "/t"}

	decoded, err := form.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if got := decoded.Header().Method; got != form.MethodPost {
		t.Fatalf("method = %q, want POST", got)
	}
}

func TestCheckboxRoutingDependsOnCheckedKey(t *testing.T) {
	doc := form.Document{}
	doc.Form.Header = form.HeaderRecord{ID: "t", Method: "POST", Action: ""}
	checked := false
	doc.Form.Elements = []form.ElementRecord{
		{Type: "input", InputType: "checkbox", Name: "with_key", Checked: &checked},
		{Type: "input", InputType: "checkbox", Name: "without_key"},
	}

	decoded, err := form.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	elements := decoded.Elements()
	if got := elements[0].Kind; got != form.KindCheckbox {
		t.Fatalf("element with checked key decoded as %q, want checkbox", got)
	}
	if got := elements[1].Kind; got != form.KindInput {
		t.Fatalf("element without checked key decoded as %q, want input", got)
	}

	// Both shapes survive a second round-trip unchanged.
	want := decoded.Document()
	again, err := form.FromDocument(want)
	if err != nil {
		t.Fatalf("FromDocument (second pass): %v", err)
	}
	if diff := cmp.Diff(want, again.Document()); diff != "" {
		t.Fatalf("checkbox round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDocumentRejectsUnknownKinds(t *testing.T) {
	doc := form.Document{}
	doc.Form.Header = form.HeaderRecord{ID: "t", Method: "GET"}
	doc.Form.Elements = []form.ElementRecord{{Type: "carousel", Name: "x"}}

	_, err := form.FromDocument(doc)
	var kindErr *form.UnrecognizedKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("error = %v, want UnrecognizedKindError", err)
	}
	if kindErr.Value != "carousel" {
		t.Fatalf("unrecognized value = %q, want carousel", kindErr.Value)
	}

	doc.Form.Elements = []form.ElementRecord{{Type: "input", InputType: "bogus", Name: "x"}}
	_, err = form.FromDocument(doc)
	if !errors.As(err, &kindErr) {
		t.Fatalf("error = %v, want UnrecognizedKindError", err)
	}
	if kindErr.Kind != "input_type" {
		t.Fatalf("unrecognized kind = %q, want input_type", kindErr.Kind)
	}
}
