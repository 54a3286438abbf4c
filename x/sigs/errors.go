package sigs

import "github.com/iov-one/quorum/errors"

// ErrInvalidSequence is returned when a signature carries a sequence other
// than the one expected for its signer.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
