package form

import "encoding/json"

// Document is the canonical nested record shape used for both serialization
// and deserialization. Absent optional fields are omitted, never null; the
// header always carries all four keys.
type Document struct {
	Form FormRecord `json:"form"`
}

// FormRecord nests the header and the ordered element list.
type FormRecord struct {
	Header   HeaderRecord    `json:"form_header"`
	Elements []ElementRecord `json:"form_element_list"`
}

// HeaderRecord is the serialized form header. Method is always uppercase on
// output.
type HeaderRecord struct {
	ID      string `json:"form_id"`
	Method  string `json:"method"`
	Action  string `json:"action"`
	Enctype string `json:"enctype"`
}

// ElementRecord is the serialized element shape. Presence of fields is
// kind-dependent: pointer fields distinguish "set to zero value" from
// "absent". Options holds []Option for selects and groups and []string for
// datalists; when decoded from JSON it holds the loosely typed equivalents.
type ElementRecord struct {
	Type         string    `json:"type"`
	InputType    string    `json:"input_type,omitempty"`
	Name         string    `json:"name"`
	Required     bool      `json:"required"`
	Label        string    `json:"label,omitempty"`
	Placeholder  string    `json:"placeholder,omitempty"`
	Value        string    `json:"value,omitempty"`
	MinLength    *int      `json:"min_length,omitempty"`
	MaxLength    *int      `json:"max_length,omitempty"`
	Pattern      string    `json:"pattern,omitempty"`
	Rows         int       `json:"rows,omitempty"`
	Cols         int       `json:"cols,omitempty"`
	Checked      *bool     `json:"checked,omitempty"`
	Multiple     *bool     `json:"multiple,omitempty"`
	Size         *int      `json:"size,omitempty"`
	MinSelect    *int      `json:"min_select,omitempty"`
	MaxSelect    *int      `json:"max_select,omitempty"`
	DefaultValue string    `json:"default_value,omitempty"`
	Options      any       `json:"options,omitempty"`
}

// Document converts the form into its canonical record shape.
func (f *Form) Document() Document {
	elements := make([]ElementRecord, 0, len(f.elements))
	for _, element := range f.elements {
		elements = append(elements, element.record())
	}
	return Document{
		Form: FormRecord{
			Header: HeaderRecord{
				ID:      f.header.ID,
				Method:  string(f.header.Method),
				Action:  f.header.Action,
				Enctype: f.header.Enctype,
			},
			Elements: elements,
		},
	}
}

// MarshalJSON serialises the canonical document.
func (f *Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Document())
}

// JSON returns the canonical document as indented JSON text.
func (f *Form) JSON() ([]byte, error) {
	return json.MarshalIndent(f.Document(), "", "  ")
}

func (e Element) record() ElementRecord {
	record := ElementRecord{
		Type:     string(e.Kind),
		Name:     e.Name,
		Required: e.Required,
	}

	switch e.Kind {
	case KindInput:
		record.InputType = string(e.InputType)
		record.Label = e.Label
		record.Placeholder = e.Placeholder
		record.Value = e.Value
		record.MinLength = e.MinLength
		record.MaxLength = e.MaxLength
		record.Pattern = e.Pattern
		if e.Multiple {
			multiple := true
			record.Multiple = &multiple
		}
	case KindCheckbox:
		// A single checkbox serialises as an input element; the presence of
		// the checked key is what routes it back through AddCheckbox.
		record.Type = string(KindInput)
		record.InputType = string(InputCheckbox)
		record.Label = e.Label
		checked := e.Checked
		record.Checked = &checked
	case KindTextarea:
		record.Label = e.Label
		record.Placeholder = e.Placeholder
		record.Value = e.Value
		record.Rows = e.Rows
		record.Cols = e.Cols
	case KindSelect:
		record.Label = e.Label
		multiple := e.Multiple
		record.Multiple = &multiple
		record.Size = e.Size
		record.Options = optionRecords(e.Options)
	case KindRadioGroup:
		record.Label = e.Label
		record.DefaultValue = e.DefaultValue
		record.Options = optionRecords(e.Options)
	case KindCheckboxGroup:
		record.Label = e.Label
		minSelect := e.MinSelect
		record.MinSelect = &minSelect
		record.MaxSelect = e.MaxSelect
		record.Options = optionRecords(e.Options)
	case KindDatalist:
		record.Label = e.Label
		record.Options = stringRecords(e.Values)
	}

	return record
}

func optionRecords(options []Option) []Option {
	if options == nil {
		return []Option{}
	}
	return options
}

func stringRecords(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
