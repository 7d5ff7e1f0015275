// Package openapi imports form models from OpenAPI 3 documents. One operation
// maps to one form: the request body's object schema supplies the elements,
// the path and HTTP method supply the header.
package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formdata/pkg/form"
)

// Media types probed for a usable request body schema, in preference order.
var mediaTypePreference = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Option configures an Importer.
type Option func(*Importer)

// WithLabeler replaces the default property-name humanizer.
func WithLabeler(labeler func(name string) string) Option {
	return func(i *Importer) {
		if labeler != nil {
			i.labeler = labeler
		}
	}
}

// Importer converts OpenAPI operations into form models.
type Importer struct {
	labeler func(name string) string
}

// New constructs an Importer.
func New(options ...Option) *Importer {
	i := &Importer{labeler: Humanize}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(i)
	}
	return i
}

// FormFromData loads an OpenAPI document from raw bytes and imports the
// operation identified by operationId.
func (i *Importer) FormFromData(ctx context.Context, raw []byte, operationID string) (*form.Form, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return i.FormFromSpec(ctx, spec, operationID)
}

// FormFromSpec imports the named operation from an already loaded document.
func (i *Importer) FormFromSpec(ctx context.Context, spec *openapi3.T, operationID string) (*form.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	if spec == nil || spec.Paths == nil {
		return nil, fmt.Errorf("openapi: document has no paths")
	}

	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range operationsByMethod(item) {
			if operation == nil || operation.OperationID != operationID {
				continue
			}
			return i.buildForm(operationID, method, path, operation)
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func operationsByMethod(item *openapi3.PathItem) map[string]*openapi3.Operation {
	return map[string]*openapi3.Operation{
		"GET":    item.Get,
		"POST":   item.Post,
		"PUT":    item.Put,
		"PATCH":  item.Patch,
		"DELETE": item.Delete,
	}
}

func (i *Importer) buildForm(operationID, method, path string, operation *openapi3.Operation) (*form.Form, error) {
	f := form.New(operationID,
		form.WithMethod(formMethod(method)),
		form.WithAction(path),
		form.WithEnctype(enctypeFor(operation)),
	)

	schema := requestBodySchema(operation)
	if schema == nil {
		return f, nil
	}
	if schema.Type == nil || !schema.Type.Is(openapi3.TypeObject) {
		return nil, fmt.Errorf("openapi: operation %q: request body is not an object schema", operationID)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		i.appendProperty(f, name, ref.Value, required[name])
	}
	return f, nil
}

// formMethod collapses the HTTP verb onto the two methods a form can submit
// with. Anything that is not GET posts.
func formMethod(method string) form.Method {
	if strings.EqualFold(method, "GET") {
		return form.MethodGet
	}
	return form.MethodPost
}

func enctypeFor(operation *openapi3.Operation) string {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return ""
	}
	if _, ok := operation.RequestBody.Value.Content["multipart/form-data"]; ok {
		return "multipart/form-data"
	}
	return ""
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range mediaTypePreference {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func (i *Importer) appendProperty(f *form.Form, name string, schema *openapi3.Schema, required bool) {
	options := []form.ElementOption{form.WithLabel(i.labeler(name))}
	if required {
		options = append(options, form.WithRequired())
	}

	switch {
	case schema.Type.Is(openapi3.TypeBoolean):
		f.AddCheckbox(name, options...)

	case schema.Type.Is(openapi3.TypeString) && len(schema.Enum) > 0:
		f.AddSelect(name, enumOptions(schema.Enum, i.labeler), options...)

	case schema.Type.Is(openapi3.TypeString):
		f.AddInput(name, inputTypeFor(schema), append(options, stringConstraints(schema)...)...)

	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		f.AddInput(name, form.InputNumber, options...)

	case schema.Type.Is(openapi3.TypeArray) && isStringEnumArray(schema):
		opts := options
		if schema.MinItems > 0 {
			opts = append(opts, form.WithMinSelect(int(schema.MinItems)))
		}
		if schema.MaxItems != nil {
			opts = append(opts, form.WithMaxSelect(int(*schema.MaxItems)))
		}
		f.AddCheckboxGroup(name, enumOptions(schema.Items.Value.Enum, i.labeler), opts...)

	default:
		// Nested objects and free-form arrays have no form counterpart.
	}
}

func inputTypeFor(schema *openapi3.Schema) form.InputType {
	switch schema.Format {
	case "email":
		return form.InputEmail
	case "uri", "url":
		return form.InputURL
	case "date":
		return form.InputDate
	case "date-time":
		return form.InputDatetimeLocal
	case "time":
		return form.InputTime
	case "password":
		return form.InputPassword
	case "binary":
		return form.InputFile
	default:
		return form.InputText
	}
}

func stringConstraints(schema *openapi3.Schema) []form.ElementOption {
	var options []form.ElementOption
	if schema.MinLength > 0 {
		options = append(options, form.WithMinLength(int(schema.MinLength)))
	}
	if schema.MaxLength != nil {
		options = append(options, form.WithMaxLength(int(*schema.MaxLength)))
	}
	if schema.Pattern != "" {
		options = append(options, form.WithPattern(schema.Pattern))
	}
	if schema.Default != nil {
		if value, ok := schema.Default.(string); ok {
			options = append(options, form.WithValue(value))
		}
	}
	return options
}

func isStringEnumArray(schema *openapi3.Schema) bool {
	if schema.Items == nil || schema.Items.Value == nil {
		return false
	}
	items := schema.Items.Value
	return items.Type.Is(openapi3.TypeString) && len(items.Enum) > 0
}

func enumOptions(enum []any, labeler func(string) string) []form.Option {
	options := make([]form.Option, 0, len(enum))
	for _, entry := range enum {
		value, ok := entry.(string)
		if !ok {
			value = fmt.Sprint(entry)
		}
		options = append(options, form.Option{Value: value, Label: labeler(value)})
	}
	return options
}

// Humanize turns a snake_case or camelCase property name into a label.
func Humanize(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r == '-':
			b.WriteByte(' ')
		case i > 0 && r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}

	label := b.String()
	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}
