package animate

import "fmt"

// InvalidKindError indicates a configuration whose animation kind is missing
// or not one of the supported kinds. There is no default kind, so this is a
// caller contract violation rather than a value to normalize.
type InvalidKindError struct {
	Kind Kind
}

func (e *InvalidKindError) Error() string {
	if e.Kind == KindUnspecified {
		return "animation kind is required and has no default"
	}
	return fmt.Sprintf("unknown animation kind '%v'", int(e.Kind))
}

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}
