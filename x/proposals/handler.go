package proposals

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
	"github.com/tendermint/tendermint/libs/common"
)

// RegisterQuery exposes proposals under /proposals.
func RegisterQuery(qr quorum.QueryRouter) {
	NewProposalBucket().Register("proposals", qr)
}

// RegisterRoutes registers handlers for the proposal lifecycle messages.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator, registry *Registry, tracker *Tracker, executor *Executor) {
	r.Handle(pathProposeMsg, &ProposeHandler{auth: auth, registry: registry})
	r.Handle(pathApproveMsg, &ApproveHandler{auth: auth, tracker: tracker})
	r.Handle(pathRevokeMsg, &RevokeHandler{auth: auth, tracker: tracker})
	r.Handle(pathExecuteMsg, &ExecuteHandler{auth: auth, executor: executor})
}

// validatorCaller returns the main signer of the transaction, which must
// be a validator. It runs before the message is validated, so an unsigned
// transaction or one from an outsider always fails with ErrNotAValidator.
func validatorCaller(ctx quorum.Context, db quorum.ReadOnlyKVStore, auth x.Authenticator, set ValidatorSet) (quorum.Address, error) {
	addr := x.MainSignerAddress(ctx, auth)
	if err := requireValidator(db, set, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

// ProposeHandler creates proposals.
type ProposeHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ quorum.Handler = (*ProposeHandler)(nil)

func (h *ProposeHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	proposer, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &quorum.CheckResult{Data: h.registry.id(proposer, msg.Target, msg.Payload)}, nil
}

func (h *ProposeHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	proposer, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.registry.Propose(ctx, db, proposer, msg.Target, msg.Payload)
	if err != nil {
		return nil, err
	}
	return &quorum.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			quorum.Tag(tagProposalID, id),
			quorum.Tag(tagAction, []byte("propose")),
		},
	}, nil
}

func (h *ProposeHandler) validate(ctx quorum.Context, db quorum.ReadOnlyKVStore, tx quorum.Tx) (quorum.Address, *ProposeMsg, error) {
	proposer, err := validatorCaller(ctx, db, h.auth, h.registry.validators)
	if err != nil {
		return nil, nil, err
	}
	var msg *ProposeMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return proposer, msg, nil
}

// ApproveHandler records approvals.
type ApproveHandler struct {
	auth    x.Authenticator
	tracker *Tracker
}

var _ quorum.Handler = (*ApproveHandler)(nil)

func (h *ApproveHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *ApproveHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	validator, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.tracker.Approve(ctx, db, validator, msg.ProposalID); err != nil {
		return nil, err
	}
	return &quorum.DeliverResult{
		Tags: []common.KVPair{
			quorum.Tag(tagProposalID, msg.ProposalID),
			quorum.Tag(tagAction, []byte("approve")),
		},
	}, nil
}

func (h *ApproveHandler) validate(ctx quorum.Context, db quorum.ReadOnlyKVStore, tx quorum.Tx) (quorum.Address, *ApproveMsg, error) {
	validator, err := validatorCaller(ctx, db, h.auth, h.tracker.validators)
	if err != nil {
		return nil, nil, err
	}
	var msg *ApproveMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return validator, msg, nil
}

// RevokeHandler withdraws approvals.
type RevokeHandler struct {
	auth    x.Authenticator
	tracker *Tracker
}

var _ quorum.Handler = (*RevokeHandler)(nil)

func (h *RevokeHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *RevokeHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	validator, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.tracker.Revoke(ctx, db, validator, msg.ProposalID); err != nil {
		return nil, err
	}
	return &quorum.DeliverResult{
		Tags: []common.KVPair{
			quorum.Tag(tagProposalID, msg.ProposalID),
			quorum.Tag(tagAction, []byte("revoke")),
		},
	}, nil
}

func (h *RevokeHandler) validate(ctx quorum.Context, db quorum.ReadOnlyKVStore, tx quorum.Tx) (quorum.Address, *RevokeMsg, error) {
	validator, err := validatorCaller(ctx, db, h.auth, h.tracker.validators)
	if err != nil {
		return nil, nil, err
	}
	var msg *RevokeMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return validator, msg, nil
}

// ExecuteHandler executes approved proposals. Anyone may sign it.
type ExecuteHandler struct {
	auth     x.Authenticator
	executor *Executor
}

var _ quorum.Handler = (*ExecuteHandler)(nil)

func (h *ExecuteHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	var msg *ExecuteMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &quorum.CheckResult{}, nil
}

func (h *ExecuteHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	var msg *ExecuteMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	cdb, ok := db.(quorum.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "execution requires a cacheable store")
	}
	return h.executor.Execute(ctx, cdb, x.MainSignerAddress(ctx, h.auth), msg.ProposalID)
}
