package form

const (
	defaultTextareaRows = 3
	defaultTextareaCols = 40
)

// Header carries the form-level attributes. It is replaced wholesale, never
// mutated in place.
type Header struct {
	ID      string
	Method  Method
	Action  string
	Enctype string
}

// Form owns a header and an ordered element sequence. Insertion order is
// rendering order. A Form is not safe for concurrent mutation; callers
// serialise access when sharing one across goroutines.
type Form struct {
	header   Header
	elements []Element
}

// FormOption configures a form at construction time.
type FormOption func(*Header)

// WithMethod overrides the default POST method.
func WithMethod(method Method) FormOption {
	return func(h *Header) { h.Method = method }
}

// WithAction sets the submission URL.
func WithAction(action string) FormOption {
	return func(h *Header) { h.Action = action }
}

// WithEnctype sets the form encoding type.
func WithEnctype(enctype string) FormOption {
	return func(h *Header) { h.Enctype = enctype }
}

// New creates a form with the given id. The method defaults to POST.
func New(id string, options ...FormOption) *Form {
	header := Header{ID: id, Method: MethodPost}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&header)
	}
	return &Form{header: header}
}

// Header returns a copy of the form header.
func (f *Form) Header() Header {
	return f.header
}

// Elements returns the element sequence in insertion order. The slice is
// shared; callers must not mutate it.
func (f *Form) Elements() []Element {
	return f.elements
}

// Len reports the number of elements.
func (f *Form) Len() int {
	return len(f.elements)
}

// Append adds a pre-built element. The typed Add* operations are the usual
// entry points; Append keeps the door open for callers composing elements
// directly.
func (f *Form) Append(element Element) {
	f.elements = append(f.elements, element)
}

// AddInput appends a basic input field of the given type.
func (f *Form) AddInput(name string, inputType InputType, options ...ElementOption) {
	element := Element{Kind: KindInput, InputType: inputType, Name: name}
	applyOptions(&element, options)
	f.Append(element)
}

// AddEmailInput appends an email input with HTML5 validation semantics.
func (f *Form) AddEmailInput(name string, options ...ElementOption) {
	f.AddInput(name, InputEmail, options...)
}

// AddURLInput appends a URL input with HTML5 validation semantics.
func (f *Form) AddURLInput(name string, options ...ElementOption) {
	f.AddInput(name, InputURL, options...)
}

// AddTextarea appends a textarea. Rows default to 3 and cols to 40.
func (f *Form) AddTextarea(name string, options ...ElementOption) {
	element := Element{
		Kind: KindTextarea,
		Name: name,
		Rows: defaultTextareaRows,
		Cols: defaultTextareaCols,
	}
	applyOptions(&element, options)
	f.Append(element)
}

// AddCheckbox appends a single checkbox. It serialises as an input element of
// type checkbox that carries a checked flag instead of value/placeholder.
func (f *Form) AddCheckbox(name string, options ...ElementOption) {
	element := Element{Kind: KindCheckbox, InputType: InputCheckbox, Name: name}
	applyOptions(&element, options)
	f.Append(element)
}

// AddCheckboxGroup appends a named group of checkboxes over value/label pairs.
func (f *Form) AddCheckboxGroup(name string, opts []Option, options ...ElementOption) {
	element := Element{Kind: KindCheckboxGroup, Name: name, Options: opts}
	applyOptions(&element, options)
	f.Append(element)
}

// AddRadioGroup appends a named group of radio buttons over value/label pairs.
func (f *Form) AddRadioGroup(name string, opts []Option, options ...ElementOption) {
	element := Element{Kind: KindRadioGroup, Name: name, Options: opts}
	applyOptions(&element, options)
	f.Append(element)
}

// AddSelect appends a select element over value/label pairs.
func (f *Form) AddSelect(name string, opts []Option, options ...ElementOption) {
	element := Element{Kind: KindSelect, Name: name, Options: opts}
	applyOptions(&element, options)
	f.Append(element)
}

// AddDatalist appends a datalist-backed input over plain string options.
func (f *Form) AddDatalist(name string, values []string, options ...ElementOption) {
	element := Element{Kind: KindDatalist, Name: name, Values: values}
	applyOptions(&element, options)
	f.Append(element)
}

func applyOptions(element *Element, options []ElementOption) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(element)
	}
}
