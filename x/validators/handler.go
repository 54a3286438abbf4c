package validators

import (
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	tagProposalID = "proposal-id"
	tagAction     = "action"
)

// RegisterRoutes registers handlers for the governance messages. All of
// them require a capability in the context and therefore can only be
// reached through the execution of an approved proposal.
func RegisterRoutes(r quorum.Registry, ctrl *Controller) {
	r.Handle(pathChangeQuorumMsg, &ChangeQuorumHandler{ctrl: ctrl})
	r.Handle(pathAddValidatorMsg, &AddValidatorHandler{ctrl: ctrl})
	r.Handle(pathRemoveValidatorMsg, &RemoveValidatorHandler{ctrl: ctrl})
}

// RegisterQuery exposes the electorate under /validators.
func RegisterQuery(qr quorum.QueryRouter) {
	NewElectorateBucket().Register("validators", qr)
}

// ChangeQuorumHandler processes ChangeQuorumMsg.
type ChangeQuorumHandler struct {
	ctrl *Controller
}

var _ quorum.Handler = (*ChangeQuorumHandler)(nil)

func (h *ChangeQuorumHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *ChangeQuorumHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, capability, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.ChangeQuorum(db, capability, msg.Quorum); err != nil {
		return nil, err
	}
	quorum.GetLogger(ctx).Info("quorum changed",
		"proposal", fmt.Sprintf("%X", capability.ProposalID()), "quorum", msg.Quorum)
	return governanceResult(capability, "change_quorum"), nil
}

func (h *ChangeQuorumHandler) validate(ctx quorum.Context, tx quorum.Tx) (*ChangeQuorumMsg, *Capability, error) {
	capability, err := h.ctrl.contextCapability(ctx)
	if err != nil {
		return nil, nil, err
	}
	var msg *ChangeQuorumMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return msg, capability, nil
}

// AddValidatorHandler processes AddValidatorMsg.
type AddValidatorHandler struct {
	ctrl *Controller
}

var _ quorum.Handler = (*AddValidatorHandler)(nil)

func (h *AddValidatorHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *AddValidatorHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, capability, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Add(db, capability, msg.Validator); err != nil {
		return nil, err
	}
	quorum.GetLogger(ctx).Info("validator added",
		"proposal", fmt.Sprintf("%X", capability.ProposalID()), "validator", msg.Validator.String())
	return governanceResult(capability, "add_validator"), nil
}

func (h *AddValidatorHandler) validate(ctx quorum.Context, tx quorum.Tx) (*AddValidatorMsg, *Capability, error) {
	capability, err := h.ctrl.contextCapability(ctx)
	if err != nil {
		return nil, nil, err
	}
	var msg *AddValidatorMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return msg, capability, nil
}

// RemoveValidatorHandler processes RemoveValidatorMsg.
type RemoveValidatorHandler struct {
	ctrl *Controller
}

var _ quorum.Handler = (*RemoveValidatorHandler)(nil)

func (h *RemoveValidatorHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *RemoveValidatorHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, capability, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Remove(db, capability, msg.Validator); err != nil {
		return nil, err
	}
	quorum.GetLogger(ctx).Info("validator removed",
		"proposal", fmt.Sprintf("%X", capability.ProposalID()), "validator", msg.Validator.String())
	return governanceResult(capability, "remove_validator"), nil
}

func (h *RemoveValidatorHandler) validate(ctx quorum.Context, tx quorum.Tx) (*RemoveValidatorMsg, *Capability, error) {
	capability, err := h.ctrl.contextCapability(ctx)
	if err != nil {
		return nil, nil, err
	}
	var msg *RemoveValidatorMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return msg, capability, nil
}

// contextCapability returns the capability carried by the context if it is
// accepted by this controller.
func (c *Controller) contextCapability(ctx quorum.Context) (*Capability, error) {
	capability := CapabilityFromContext(ctx)
	if err := c.authority.authorize(capability); err != nil {
		return nil, err
	}
	return capability, nil
}

func governanceResult(capability *Capability, action string) *quorum.DeliverResult {
	return &quorum.DeliverResult{
		Tags: []common.KVPair{
			quorum.Tag(tagProposalID, capability.ProposalID()),
			quorum.Tag(tagAction, []byte(action)),
		},
	}
}
