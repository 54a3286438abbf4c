package proposals

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Call is an approved invocation of an external target.
type Call struct {
	Target  quorum.Address
	Payload []byte
	// Value is the amount already credited to the target's vault account
	// as part of this call.
	Value int64
}

// Target is an external entity that can be called by executed proposals.
// Returning an error rolls back the whole execution.
type Target interface {
	Call(ctx quorum.Context, db quorum.KVStore, call Call) error
}

// TargetFunc adapts a function to the Target interface.
type TargetFunc func(ctx quorum.Context, db quorum.KVStore, call Call) error

// Call calls f(ctx, db, call).
func (f TargetFunc) Call(ctx quorum.Context, db quorum.KVStore, call Call) error {
	return f(ctx, db, call)
}

// Dispatcher delivers calls to external targets.
type Dispatcher interface {
	Dispatch(ctx quorum.Context, db quorum.KVStore, call Call) error
}

// TargetRouter is a Dispatcher that routes calls by target address.
type TargetRouter struct {
	targets map[string]Target
}

var _ Dispatcher = (*TargetRouter)(nil)

// NewTargetRouter returns a router without registered targets.
func NewTargetRouter() *TargetRouter {
	return &TargetRouter{targets: make(map[string]Target)}
}

// Register binds a target implementation to an address. It panics if the
// address is invalid or already bound.
func (r *TargetRouter) Register(addr quorum.Address, t Target) {
	if err := addr.Validate(); err != nil {
		panic(err)
	}
	key := string(addr)
	if _, ok := r.targets[key]; ok {
		panic("target already registered: " + addr.String())
	}
	r.targets[key] = t
}

// Dispatch calls the target registered for the call address. Calls to an
// unregistered address succeed, as a plain value transfer would. A target
// that panics fails the same way as one returning an error.
func (r *TargetRouter) Dispatch(ctx quorum.Context, db quorum.KVStore, call Call) error {
	t, ok := r.targets[string(call.Target)]
	if !ok {
		return nil
	}
	if err := callTarget(ctx, db, t, call); err != nil {
		return errors.Wrap(errors.Append(ErrExternalCallFailed, err), call.Target.String())
	}
	return nil
}

func callTarget(ctx quorum.Context, db quorum.KVStore, t Target, call Call) (err error) {
	defer errors.Recover(&err)
	return t.Call(ctx, db, call)
}
