package form

import (
	"fmt"
	"strings"
)

// Method is the HTTP method a form submits with. Stored uppercase; parsing is
// case-insensitive.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod accepts any case variant of GET/POST and returns the canonical
// uppercase method.
func ParseMethod(value string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	default:
		return "", fmt.Errorf("form: unsupported method %q", value)
	}
}

// InputType enumerates the HTML5 input kinds the model understands.
type InputType string

const (
	InputText          InputType = "text"
	InputPassword      InputType = "password"
	InputEmail         InputType = "email"
	InputURL           InputType = "url"
	InputNumber        InputType = "number"
	InputTel           InputType = "tel"
	InputDate          InputType = "date"
	InputTime          InputType = "time"
	InputDatetimeLocal InputType = "datetime-local"
	InputMonth         InputType = "month"
	InputWeek          InputType = "week"
	InputColor         InputType = "color"
	InputCheckbox      InputType = "checkbox"
	InputRadio         InputType = "radio"
	InputHidden        InputType = "hidden"
	InputSubmit        InputType = "submit"
	InputReset         InputType = "reset"
	InputButton        InputType = "button"
	InputFile          InputType = "file"
)

var inputTypes = map[InputType]struct{}{
	InputText: {}, InputPassword: {}, InputEmail: {}, InputURL: {},
	InputNumber: {}, InputTel: {}, InputDate: {}, InputTime: {},
	InputDatetimeLocal: {}, InputMonth: {}, InputWeek: {}, InputColor: {},
	InputCheckbox: {}, InputRadio: {}, InputHidden: {}, InputSubmit: {},
	InputReset: {}, InputButton: {}, InputFile: {},
}

// ParseInputType validates a raw input_type value against the closed set.
func ParseInputType(value string) (InputType, error) {
	typ := InputType(value)
	if _, ok := inputTypes[typ]; !ok {
		return "", &UnrecognizedKindError{Kind: "input_type", Value: value}
	}
	return typ, nil
}

// ElementKind discriminates the element variants. KindCheckbox is the single
// checkbox, which serialises as an input element carrying a checked flag.
type ElementKind string

const (
	KindInput         ElementKind = "input"
	KindTextarea      ElementKind = "textarea"
	KindCheckbox      ElementKind = "checkbox"
	KindCheckboxGroup ElementKind = "checkbox_group"
	KindRadioGroup    ElementKind = "radio_group"
	KindSelect        ElementKind = "select"
	KindDatalist      ElementKind = "datalist"
)

// Option is a value/label pair used by selects, radio groups and checkbox
// groups. Datalists intentionally use plain strings instead.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
