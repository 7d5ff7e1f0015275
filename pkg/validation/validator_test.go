package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-formdata/pkg/validation"
)

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()
	v, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New: %v", err)
	}
	return v
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return doc
}

func TestValidateAcceptsCanonicalDocument(t *testing.T) {
	v := newValidator(t)
	doc := decode(t, `{
		"form": {
			"form_header": {"form_id": "login", "method": "post", "action": "/login", "enctype": ""},
			"form_element_list": [
				{"type": "input", "input_type": "text", "name": "username", "required": true},
				{"type": "select", "name": "country", "required": false, "multiple": false,
				 "options": [{"value": "us", "label": "United States"}]},
				{"type": "datalist", "name": "editor", "required": false, "options": ["vim", "emacs"]},
				{"type": "checkbox_group", "name": "tags", "required": false,
				 "min_select": 0, "max_select": null, "options": []}
			]
		}
	}`)

	result := v.Validate(doc)
	if !result.Valid {
		t.Fatalf("document rejected: %+v", result.Issues)
	}
	if err := result.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
}

func TestValidateReportsMissingFormID(t *testing.T) {
	v := newValidator(t)
	doc := decode(t, `{
		"form": {
			"form_header": {"method": "POST", "action": "/t"},
			"form_element_list": []
		}
	}`)

	result := v.Validate(doc)
	if result.Valid {
		t.Fatal("document accepted, want rejection")
	}

	issue := findIssue(t, result, validation.IssueMissingRequired)
	if !strings.Contains(issue.Path, "form_header.form_id") {
		t.Fatalf("issue path = %q, want it to mention form_header.form_id", issue.Path)
	}
}

func TestValidateMethodCaseMatrix(t *testing.T) {
	v := newValidator(t)

	for _, method := range []string{"GET", "get", "Get", "POST", "post", "pOsT"} {
		doc := header(t, method)
		if result := v.Validate(doc); !result.Valid {
			t.Fatalf("method %q rejected: %+v", method, result.Issues)
		}
	}

	for _, method := range []string{"PUT", "DELETE", "", "poost"} {
		doc := header(t, method)
		result := v.Validate(doc)
		if result.Valid {
			t.Fatalf("method %q accepted, want rejection", method)
		}
		issue := findIssue(t, result, validation.IssueValueNotAllowed)
		if !strings.Contains(issue.Path, "method") {
			t.Fatalf("issue path = %q, want it to mention method", issue.Path)
		}
	}
}

func TestValidateRejectsUnknownInputType(t *testing.T) {
	v := newValidator(t)
	doc := decode(t, `{
		"form": {
			"form_header": {"form_id": "t", "method": "POST", "action": ""},
			"form_element_list": [
				{"type": "input", "input_type": "bogus", "name": "x", "required": false}
			]
		}
	}`)

	result := v.Validate(doc)
	if result.Valid {
		t.Fatal("document accepted, want rejection")
	}
	issue := findIssue(t, result, validation.IssueValueNotAllowed)
	if !strings.Contains(issue.Path, "input_type") {
		t.Fatalf("issue path = %q, want it to mention input_type", issue.Path)
	}
}

func TestValidateRejectsTypeMismatch(t *testing.T) {
	v := newValidator(t)
	doc := decode(t, `{
		"form": {
			"form_header": {"form_id": "t", "method": "POST", "action": 7},
			"form_element_list": []
		}
	}`)

	result := v.Validate(doc)
	if result.Valid {
		t.Fatal("document accepted, want rejection")
	}
	issue := findIssue(t, result, validation.IssueTypeMismatch)
	if !strings.Contains(issue.Path, "action") {
		t.Fatalf("issue path = %q, want it to mention action", issue.Path)
	}
}

func TestValidateRequiresInputTypeOnInputs(t *testing.T) {
	v := newValidator(t)
	doc := decode(t, `{
		"form": {
			"form_header": {"form_id": "t", "method": "POST", "action": ""},
			"form_element_list": [{"type": "input", "name": "x", "required": false}]
		}
	}`)

	result := v.Validate(doc)
	if result.Valid {
		t.Fatal("document accepted, want rejection")
	}
	issue := findIssue(t, result, validation.IssueMissingRequired)
	if !strings.Contains(issue.Path, "input_type") {
		t.Fatalf("issue path = %q, want it to mention input_type", issue.Path)
	}
}

func header(t *testing.T, method string) any {
	t.Helper()
	return map[string]any{
		"form": map[string]any{
			"form_header": map[string]any{
				"form_id": "t",
				"method":  method,
				"action":  "/t",
			},
			"form_element_list": []any{},
		},
	}
}

func findIssue(t *testing.T, result validation.Result, kind validation.IssueKind) validation.Issue {
	t.Helper()
	for _, issue := range result.Issues {
		if issue.Kind == kind {
			return issue
		}
	}
	t.Fatalf("no %s issue found in %+v", kind, result.Issues)
	return validation.Issue{}
}
