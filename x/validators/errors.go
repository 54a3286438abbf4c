package validators

import "github.com/iov-one/quorum/errors"

var (
	// ErrInvalidQuorum is returned when a threshold of zero or above the
	// validator count is requested.
	ErrInvalidQuorum = errors.Register(140, "invalid quorum")

	// ErrDuplicateValidator is returned when an identity is already a
	// validator.
	ErrDuplicateValidator = errors.Register(141, "duplicate validator")

	// ErrUnknownValidator is returned when removing an identity that is not
	// a validator.
	ErrUnknownValidator = errors.Register(142, "unknown validator")

	// ErrNotAValidator is returned when an action restricted to validators
	// is requested by anyone else.
	ErrNotAValidator = errors.Register(143, "not a validator")
)
