package form

import "fmt"

// FromDocument reconstructs a Form from a canonical document. It is total
// over documents that passed schema validation; handed anything else it fails
// abruptly rather than repairing or dropping elements.
func FromDocument(doc Document) (*Form, error) {
	method, err := ParseMethod(doc.Form.Header.Method)
	if err != nil {
		return nil, fmt.Errorf("form: decode header: %w", err)
	}

	f := New(doc.Form.Header.ID,
		WithMethod(method),
		WithAction(doc.Form.Header.Action),
		WithEnctype(doc.Form.Header.Enctype),
	)

	for i, record := range doc.Form.Elements {
		if err := appendRecord(f, record); err != nil {
			return nil, fmt.Errorf("form: decode element %d: %w", i, err)
		}
	}
	return f, nil
}

func appendRecord(f *Form, record ElementRecord) error {
	switch ElementKind(record.Type) {
	case KindInput:
		return appendInputRecord(f, record)
	case KindTextarea:
		f.AddTextarea(record.Name, textareaOptions(record)...)
	case KindSelect:
		options, err := optionPairs(record.Options)
		if err != nil {
			return err
		}
		f.AddSelect(record.Name, options, selectOptions(record)...)
	case KindRadioGroup:
		options, err := optionPairs(record.Options)
		if err != nil {
			return err
		}
		f.AddRadioGroup(record.Name, options, radioGroupOptions(record)...)
	case KindCheckboxGroup:
		options, err := optionPairs(record.Options)
		if err != nil {
			return err
		}
		f.AddCheckboxGroup(record.Name, options, checkboxGroupOptions(record)...)
	case KindDatalist:
		values, err := stringValues(record.Options)
		if err != nil {
			return err
		}
		f.AddDatalist(record.Name, values, commonOptions(record)...)
	default:
		return &UnrecognizedKindError{Kind: "type", Value: record.Type}
	}
	return nil
}

func appendInputRecord(f *Form, record ElementRecord) error {
	inputType, err := ParseInputType(record.InputType)
	if err != nil {
		return err
	}

	// Inherited routing quirk: a checkbox input is treated as a single
	// checkbox only when the record carries a checked key. Without it the
	// element stays a generic input, which keeps round-trips stable for
	// elements created either way.
	if inputType == InputCheckbox && record.Checked != nil {
		options := commonOptions(record)
		if *record.Checked {
			options = append(options, WithChecked())
		}
		f.AddCheckbox(record.Name, options...)
		return nil
	}

	f.AddInput(record.Name, inputType, inputOptions(record)...)
	return nil
}

func commonOptions(record ElementRecord) []ElementOption {
	var options []ElementOption
	if record.Required {
		options = append(options, WithRequired())
	}
	if record.Label != "" {
		options = append(options, WithLabel(record.Label))
	}
	return options
}

func inputOptions(record ElementRecord) []ElementOption {
	options := commonOptions(record)
	if record.Placeholder != "" {
		options = append(options, WithPlaceholder(record.Placeholder))
	}
	if record.Value != "" {
		options = append(options, WithValue(record.Value))
	}
	if record.MinLength != nil {
		options = append(options, WithMinLength(*record.MinLength))
	}
	if record.MaxLength != nil {
		options = append(options, WithMaxLength(*record.MaxLength))
	}
	if record.Pattern != "" {
		options = append(options, WithPattern(record.Pattern))
	}
	if record.Multiple != nil && *record.Multiple {
		options = append(options, WithMultiple())
	}
	return options
}

func textareaOptions(record ElementRecord) []ElementOption {
	options := commonOptions(record)
	if record.Placeholder != "" {
		options = append(options, WithPlaceholder(record.Placeholder))
	}
	if record.Value != "" {
		options = append(options, WithValue(record.Value))
	}
	if record.Rows > 0 {
		options = append(options, WithRows(record.Rows))
	}
	if record.Cols > 0 {
		options = append(options, WithCols(record.Cols))
	}
	return options
}

func selectOptions(record ElementRecord) []ElementOption {
	options := commonOptions(record)
	if record.Multiple != nil && *record.Multiple {
		options = append(options, WithMultiple())
	}
	if record.Size != nil {
		options = append(options, WithSize(*record.Size))
	}
	return options
}

func radioGroupOptions(record ElementRecord) []ElementOption {
	options := commonOptions(record)
	if record.DefaultValue != "" {
		options = append(options, WithDefaultValue(record.DefaultValue))
	}
	return options
}

func checkboxGroupOptions(record ElementRecord) []ElementOption {
	options := commonOptions(record)
	if record.MinSelect != nil {
		options = append(options, WithMinSelect(*record.MinSelect))
	}
	if record.MaxSelect != nil {
		options = append(options, WithMaxSelect(*record.MaxSelect))
	}
	return options
}

// optionPairs coerces the loosely typed options slice into value/label pairs.
// JSON decoding hands us []any of maps; documents built in-process carry
// []Option directly.
func optionPairs(value any) ([]Option, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []Option:
		return v, nil
	case []any:
		out := make([]Option, 0, len(v))
		for _, entry := range v {
			pair, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("form: option entry has type %T, want object", entry)
			}
			option := Option{}
			if raw, ok := pair["value"].(string); ok {
				option.Value = raw
			}
			if raw, ok := pair["label"].(string); ok {
				option.Label = raw
			}
			out = append(out, option)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("form: options have type %T, want array", value)
	}
}

func stringValues(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("form: datalist option has type %T, want string", entry)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("form: options have type %T, want array", value)
	}
}
