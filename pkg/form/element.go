package form

// Element is the tagged variant behind every entry in a form's element list.
// Only the fields relevant to Kind are meaningful; the Add* constructors on
// Form populate the right subset. The model performs no cross-field
// validation: out-of-range values are carried structurally and rejected, if at
// all, by the schema validator on the input side.
type Element struct {
	Kind      ElementKind
	InputType InputType

	Name     string
	Required bool
	Label    string

	// Input and textarea surface.
	Placeholder string
	Value       string
	MinLength   *int
	MaxLength   *int
	Pattern     string

	// Textarea geometry.
	Rows int
	Cols int

	// Single checkbox.
	Checked bool

	// Select and email inputs.
	Multiple bool
	Size     *int

	// Grouped options.
	Options      []Option
	DefaultValue string
	MinSelect    int
	MaxSelect    *int

	// Datalist options are plain strings, not value/label pairs.
	Values []string
}

// ElementOption mutates an element under construction. Options that do not
// apply to the element kind being built are ignored structurally.
type ElementOption func(*Element)

// WithRequired marks the element as required.
func WithRequired() ElementOption {
	return func(e *Element) { e.Required = true }
}

// WithLabel sets the visible label.
func WithLabel(label string) ElementOption {
	return func(e *Element) { e.Label = label }
}

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(placeholder string) ElementOption {
	return func(e *Element) { e.Placeholder = placeholder }
}

// WithValue sets the initial value.
func WithValue(value string) ElementOption {
	return func(e *Element) { e.Value = value }
}

// WithMinLength constrains the minimum input length.
func WithMinLength(n int) ElementOption {
	return func(e *Element) { e.MinLength = &n }
}

// WithMaxLength constrains the maximum input length.
func WithMaxLength(n int) ElementOption {
	return func(e *Element) { e.MaxLength = &n }
}

// WithPattern attaches a regex constraint. The expression is carried as an
// opaque string and never compiled by the model.
func WithPattern(pattern string) ElementOption {
	return func(e *Element) { e.Pattern = pattern }
}

// WithRows sets the textarea row count.
func WithRows(rows int) ElementOption {
	return func(e *Element) { e.Rows = rows }
}

// WithCols sets the textarea column count.
func WithCols(cols int) ElementOption {
	return func(e *Element) { e.Cols = cols }
}

// WithChecked pre-checks a single checkbox.
func WithChecked() ElementOption {
	return func(e *Element) { e.Checked = true }
}

// WithMultiple allows multiple values (selects, email inputs).
func WithMultiple() ElementOption {
	return func(e *Element) { e.Multiple = true }
}

// WithSize sets the visible row count of a select.
func WithSize(size int) ElementOption {
	return func(e *Element) { e.Size = &size }
}

// WithDefaultValue pre-selects a radio group option by value.
func WithDefaultValue(value string) ElementOption {
	return func(e *Element) { e.DefaultValue = value }
}

// WithMinSelect sets the minimum selection count of a checkbox group.
func WithMinSelect(n int) ElementOption {
	return func(e *Element) { e.MinSelect = n }
}

// WithMaxSelect sets the maximum selection count of a checkbox group.
func WithMaxSelect(n int) ElementOption {
	return func(e *Element) { e.MaxSelect = &n }
}
