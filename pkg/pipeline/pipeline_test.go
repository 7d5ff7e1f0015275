package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/pipeline"
	"github.com/goliatone/go-formdata/pkg/validation"
)

func buildLoginForm() *form.Form {
	f := form.New("login_form",
		form.WithMethod(form.MethodPost),
		form.WithAction("/login"),
	)
	f.AddInput("username", form.InputText, form.WithRequired())
	f.AddInput("password", form.InputPassword, form.WithRequired())
	return f
}

func newPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New()
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	return p
}

func TestLoginFormSurvivesTheFullPipeline(t *testing.T) {
	p := newPipeline(t)

	source, err := buildLoginForm().JSON()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	decoded, err := p.Decode(context.Background(), source, pipeline.FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	roundTripped, err := decoded.JSON()
	if err != nil {
		t.Fatalf("reserialize: %v", err)
	}

	var want, got any
	if err := json.Unmarshal(source, &want); err != nil {
		t.Fatalf("parse source: %v", err)
	}
	if err := json.Unmarshal(roundTripped, &got); err != nil {
		t.Fatalf("parse round trip: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document changed across the pipeline (-want +got):\n%s", diff)
	}
}

func TestRunRendersWithEachRegisteredSkin(t *testing.T) {
	p := newPipeline(t)

	source, err := buildLoginForm().JSON()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	skins := p.Skins()
	want := []string{"bootstrap5", "bulma", "materialize"}
	if diff := cmp.Diff(want, skins); diff != "" {
		t.Fatalf("skins mismatch (-want +got):\n%s", diff)
	}

	for _, name := range skins {
		result, err := p.Run(context.Background(), pipeline.Request{
			Source: source,
			Skin:   name,
		})
		if err != nil {
			t.Fatalf("run with %s: %v", name, err)
		}
		if !strings.Contains(result.Markup, `id="login_form"`) {
			t.Errorf("%s markup missing form id:\n%s", name, result.Markup)
		}
		if !strings.Contains(result.Markup, `name="password"`) {
			t.Errorf("%s markup missing password field:\n%s", name, result.Markup)
		}
	}
}

func TestRunRejectsUnknownSkin(t *testing.T) {
	p := newPipeline(t)

	source, err := buildLoginForm().JSON()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	if _, err := p.Run(context.Background(), pipeline.Request{Source: source, Skin: "tailwind"}); err == nil {
		t.Fatal("expected unknown skin to fail")
	}
}

func TestDecodeReportsSchemaViolations(t *testing.T) {
	p := newPipeline(t)

	source := []byte(`{"form": {"form_header": {"method": "POST", "action": "", "enctype": ""}, "form_element_list": []}}`)

	_, err := p.Decode(context.Background(), source, pipeline.FormatJSON)
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if len(verr.Issues) == 0 || verr.Issues[0].Kind != validation.IssueMissingRequired {
		t.Fatalf("unexpected issues: %+v", verr.Issues)
	}
}

func TestDecodeReportsMalformedSource(t *testing.T) {
	p := newPipeline(t)

	_, err := p.Decode(context.Background(), []byte(`{"form":`), pipeline.FormatJSON)
	var merr *pipeline.MalformedSourceError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MalformedSourceError, got %v", err)
	}
}

func TestDecodeAcceptsYAML(t *testing.T) {
	p := newPipeline(t)

	source := []byte(`
form:
  form_header:
    form_id: contact
    method: post
    action: /contact
    enctype: ""
  form_element_list:
    - type: input
      input_type: email
      name: email
      required: true
`)

	f, err := p.Decode(context.Background(), source, pipeline.FormatYAML)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if f.Header().ID != "contact" {
		t.Fatalf("header id = %q, want contact", f.Header().ID)
	}
	if f.Header().Method != form.MethodPost {
		t.Fatalf("method = %q, want POST", f.Header().Method)
	}
	if f.Len() != 1 {
		t.Fatalf("element count = %d, want 1", f.Len())
	}
}

func TestDecodeHonorsContextCancellation(t *testing.T) {
	p := newPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Decode(ctx, []byte(`{}`), pipeline.FormatJSON); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
