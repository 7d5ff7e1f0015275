package form

import "fmt"

// UnrecognizedKindError signals that a document reached the deserializer with
// a type or input_type outside the closed sets. Validated documents can never
// trigger it; seeing one means the validator and deserializer are out of sync.
type UnrecognizedKindError struct {
	Kind  string
	Value string
}

func (e *UnrecognizedKindError) Error() string {
	return fmt.Sprintf("form: unrecognized %s %q", e.Kind, e.Value)
}
