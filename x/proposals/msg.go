package proposals

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const (
	pathProposeMsg = "proposals/propose"
	pathApproveMsg = "proposals/approve"
	pathRevokeMsg  = "proposals/revoke"
	pathExecuteMsg = "proposals/execute"
)

// ProposeMsg creates a proposal signed by a validator.
type ProposeMsg struct {
	Target  quorum.Address `protobuf:"bytes,1,opt,name=target,proto3,casttype=github.com/iov-one/quorum.Address" json:"target"`
	Payload []byte         `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload"`
}

var _ quorum.Msg = (*ProposeMsg)(nil)

func (ProposeMsg) Path() string {
	return pathProposeMsg
}

func (m *ProposeMsg) Validate() error {
	return errors.Wrap(m.Target.Validate(), "target")
}

// ApproveMsg approves a proposal on behalf of the signing validator.
type ApproveMsg struct {
	ProposalID []byte `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id"`
}

var _ quorum.Msg = (*ApproveMsg)(nil)

func (ApproveMsg) Path() string {
	return pathApproveMsg
}

func (m *ApproveMsg) Validate() error {
	return validateID(m.ProposalID)
}

// RevokeMsg withdraws the approval of the signing validator.
type RevokeMsg struct {
	ProposalID []byte `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id"`
}

var _ quorum.Msg = (*RevokeMsg)(nil)

func (RevokeMsg) Path() string {
	return pathRevokeMsg
}

func (m *RevokeMsg) Validate() error {
	return validateID(m.ProposalID)
}

// ExecuteMsg executes an approved proposal.
type ExecuteMsg struct {
	ProposalID []byte `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id"`
}

var _ quorum.Msg = (*ExecuteMsg)(nil)

func (ExecuteMsg) Path() string {
	return pathExecuteMsg
}

func (m *ExecuteMsg) Validate() error {
	return validateID(m.ProposalID)
}

func validateID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "proposal id")
	}
	return nil
}
