package utils

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Recovery is a decorator that turns panics raised while processing a
// transaction into ErrPanic errors, so a faulty handler cannot halt the
// engine.
type Recovery struct{}

var _ quorum.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Checker) (_ *quorum.CheckResult, err error) {
	defer logRecovered(ctx, &err)
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (_ *quorum.DeliverResult, err error) {
	defer logRecovered(ctx, &err)
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}

func logRecovered(ctx quorum.Context, err *error) {
	if errors.ErrPanic.Is(*err) {
		quorum.GetLogger(ctx).Error("recovered from panic", "err", *err)
	}
}
