package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/pipeline"
	"github.com/goliatone/go-formdata/pkg/tui"
)

func TestSubmissionLinesFollowElementOrder(t *testing.T) {
	f := form.New("signup")
	f.AddInput("username", form.InputText)
	f.AddInput("email", form.InputEmail)
	f.AddCheckboxGroup("topics", []form.Option{
		{Value: "go", Label: "Go"},
		{Value: "sql", Label: "SQL"},
	})
	f.AddInput("referrer", form.InputText)

	submission := tui.Submission{
		"topics":   {"go", "sql"},
		"email":    {"a@b.c"},
		"username": {"jdoe"},
	}

	want := []string{
		"username=jdoe",
		"email=a@b.c",
		"topics=go,sql",
	}
	if diff := cmp.Diff(want, submissionLines(f, submission)); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]pipeline.Format{
		"form.json": pipeline.FormatJSON,
		"form.yaml": pipeline.FormatYAML,
		"form.YML":  pipeline.FormatYAML,
		"form":      pipeline.FormatJSON,
	}
	for path, want := range cases {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
