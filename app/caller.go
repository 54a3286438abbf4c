package app

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

type contextKey int // local to the app module

const (
	contextKeyCaller contextKey = iota
)

// withCaller is private, as only the Engine can vouch for a caller.
func withCaller(ctx quorum.Context, caller quorum.Condition) quorum.Context {
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// CallerAuth authenticates the caller passed to an Engine call.
type CallerAuth struct{}

var _ x.Authenticator = CallerAuth{}

// GetConditions returns the caller of the current Engine call, if any.
func (CallerAuth) GetConditions(ctx quorum.Context) []quorum.Condition {
	c, _ := ctx.Value(contextKeyCaller).(quorum.Condition)
	if c == nil {
		return nil
	}
	return []quorum.Condition{c}
}

// HasAddress returns true if addr belongs to the caller.
func (a CallerAuth) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
