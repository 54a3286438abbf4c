package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no error or only nil values were provided, nil is returned.
// A single non-nil error is returned unchanged.
//
// The resulting error carries the ABCI code of the first contained error and
// matches any of the contained root errors when tested with Is.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is a flat list of errors. It never contains nil values nor other
// multiErr instances.
type multiErr []error

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// ABCICode returns the code of the first error.
func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}

// Unpack implements the unpacker interface.
func (m multiErr) Unpack() []error {
	return []error(m)
}

// unpacker is implemented by errors that aggregate other errors.
type unpacker interface {
	Unpack() []error
}
