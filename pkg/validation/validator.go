// Package validation decides whether a document is an acceptable canonical
// form document before deserialization. The schema is fixed and embedded;
// callers construct a Validator once at startup and pass it where it is
// needed instead of relying on lazy global state.
package validation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed form.schema.json
var schemaJSON []byte

const schemaURL = "form.schema.json"

var printer = message.NewPrinter(language.English)

// IssueKind classifies a schema violation.
type IssueKind string

const (
	IssueMissingRequired IssueKind = "missing_required"
	IssueTypeMismatch    IssueKind = "type_mismatch"
	IssueValueNotAllowed IssueKind = "value_not_allowed"
	IssueConstraint      IssueKind = "constraint"
)

// Issue is a single schema violation with enough path context to locate the
// offending field without re-reading the document.
type Issue struct {
	Path    string    `json:"path"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// Result captures a validation outcome.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err returns nil for valid results and an *Error carrying the issues
// otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Error{Issues: r.Issues}
}

// Error is the error form of an invalid result.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation: document does not match the form schema"
	}
	first := e.Issues[0]
	msg := fmt.Sprintf("validation: %s: %s", first.Path, first.Message)
	if rest := len(e.Issues) - 1; rest > 0 {
		msg += fmt.Sprintf(" (and %d more issues)", rest)
	}
	return msg
}

// Validator checks documents against the embedded form schema.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the embedded schema. The cost is paid once; the returned
// Validator is safe for concurrent use.
func New() (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("validation: parse embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("validation: add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("validation: compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks a decoded document (map/slice/scalar values, as produced by
// encoding/json) against the form schema.
func (v *Validator) Validate(doc any) Result {
	err := v.schema.Validate(doc)
	if err == nil {
		return Result{Valid: true}
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return Result{Issues: []Issue{{Kind: IssueConstraint, Message: err.Error()}}}
	}

	var issues []Issue
	collectIssues(verr, &issues)
	if len(issues) == 0 {
		issues = append(issues, Issue{Kind: IssueConstraint, Message: strings.TrimSpace(verr.Error())})
	}
	return Result{Issues: issues}
}

func collectIssues(verr *jsonschema.ValidationError, issues *[]Issue) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := instancePath(verr.InstanceLocation)
	switch k := verr.ErrorKind.(type) {
	case *kind.Required:
		for _, missing := range k.Missing {
			*issues = append(*issues, Issue{
				Path:    joinPath(path, missing),
				Kind:    IssueMissingRequired,
				Message: fmt.Sprintf("missing required property %q", missing),
			})
		}
	case *kind.Type:
		*issues = append(*issues, issueAt(path, IssueTypeMismatch, verr))
	case *kind.Enum, *kind.Const:
		*issues = append(*issues, issueAt(path, IssueValueNotAllowed, verr))
	case *kind.Pattern:
		// The schema expresses the case-insensitive method set as a pattern;
		// report it as a closed-set violation.
		*issues = append(*issues, issueAt(path, IssueValueNotAllowed, verr))
	default:
		*issues = append(*issues, issueAt(path, IssueConstraint, verr))
	}
}

func issueAt(path string, kind IssueKind, verr *jsonschema.ValidationError) Issue {
	return Issue{
		Path:    path,
		Kind:    kind,
		Message: strings.TrimSpace(verr.ErrorKind.LocalizedString(printer)),
	}
}

func instancePath(segments []string) string {
	return strings.Join(segments, ".")
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
