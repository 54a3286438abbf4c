package errors

import "fmt"

// Field attaches the name of the model attribute that failed validation
// to err. A nil err stays nil, so the result of a nested Validate call can
// be passed in directly.
func Field(name string, err error, desc string) error {
	if isNilErr(err) {
		return nil
	}
	return &fieldError{parent: err, field: name, desc: desc}
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("%s: %s", e.field, e.parent)
	}
	return fmt.Sprintf("%s: %s: %s", e.field, e.desc, e.parent)
}

// Cause implements the causer interface.
func (e *fieldError) Cause() error {
	return e.parent
}
