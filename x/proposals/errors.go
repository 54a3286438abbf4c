package proposals

import "github.com/iov-one/quorum/errors"

var (
	ErrProposalExists     = errors.Register(150, "proposal already exists")
	ErrProposalNotFound   = errors.Register(151, "proposal doesn't exist")
	ErrAlreadyApproved    = errors.Register(152, "already approved")
	ErrNotApproved        = errors.Register(153, "proposal isn't approved")
	ErrAlreadyExecuted    = errors.Register(154, "already executed")
	ErrQuorumNotMet       = errors.Register(155, "quorum not met")
	ErrExternalCallFailed = errors.Register(156, "external call failed")
)
