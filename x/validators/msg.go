package validators

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const (
	pathChangeQuorumMsg    = "validators/change_quorum"
	pathAddValidatorMsg    = "validators/add"
	pathRemoveValidatorMsg = "validators/remove"
)

// ChangeQuorumMsg replaces the quorum of the electorate.
type ChangeQuorumMsg struct {
	Quorum uint32 `protobuf:"varint,1,opt,name=quorum,proto3" json:"quorum"`
}

var _ quorum.Msg = (*ChangeQuorumMsg)(nil)

func (ChangeQuorumMsg) Path() string {
	return pathChangeQuorumMsg
}

func (m *ChangeQuorumMsg) Validate() error {
	if m.Quorum == 0 {
		return errors.Wrap(ErrInvalidQuorum, "quorum must be greater than zero")
	}
	return nil
}

// AddValidatorMsg adds an identity to the electorate.
type AddValidatorMsg struct {
	Validator quorum.Address `protobuf:"bytes,1,opt,name=validator,proto3,casttype=github.com/iov-one/quorum.Address" json:"validator"`
}

var _ quorum.Msg = (*AddValidatorMsg)(nil)

func (AddValidatorMsg) Path() string {
	return pathAddValidatorMsg
}

func (m *AddValidatorMsg) Validate() error {
	return errors.Wrap(m.Validator.Validate(), "validator")
}

// RemoveValidatorMsg removes an identity from the electorate.
type RemoveValidatorMsg struct {
	Validator quorum.Address `protobuf:"bytes,1,opt,name=validator,proto3,casttype=github.com/iov-one/quorum.Address" json:"validator"`
}

var _ quorum.Msg = (*RemoveValidatorMsg)(nil)

func (RemoveValidatorMsg) Path() string {
	return pathRemoveValidatorMsg
}

func (m *RemoveValidatorMsg) Validate() error {
	return errors.Wrap(m.Validator.Validate(), "validator")
}

// GovernanceInstruction is the payload of a proposal that targets the engine
// itself. Exactly one of the messages must be set.
type GovernanceInstruction struct {
	ChangeQuorumMsg    *ChangeQuorumMsg    `protobuf:"bytes,1,opt,name=change_quorum_msg,json=changeQuorumMsg,proto3" json:"change_quorum_msg,omitempty"`
	AddValidatorMsg    *AddValidatorMsg    `protobuf:"bytes,2,opt,name=add_validator_msg,json=addValidatorMsg,proto3" json:"add_validator_msg,omitempty"`
	RemoveValidatorMsg *RemoveValidatorMsg `protobuf:"bytes,3,opt,name=remove_validator_msg,json=removeValidatorMsg,proto3" json:"remove_validator_msg,omitempty"`
}

// GetMsg returns the only message carried by the instruction.
func (g *GovernanceInstruction) GetMsg() (quorum.Msg, error) {
	var msgs []quorum.Msg
	if g.ChangeQuorumMsg != nil {
		msgs = append(msgs, g.ChangeQuorumMsg)
	}
	if g.AddValidatorMsg != nil {
		msgs = append(msgs, g.AddValidatorMsg)
	}
	if g.RemoveValidatorMsg != nil {
		msgs = append(msgs, g.RemoveValidatorMsg)
	}
	if len(msgs) != 1 {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "instruction must carry exactly one message, got %d", len(msgs))
	}
	return msgs[0], nil
}

// NewInstruction wraps a governance message into an instruction.
func NewInstruction(msg quorum.Msg) (*GovernanceInstruction, error) {
	switch m := msg.(type) {
	case *ChangeQuorumMsg:
		return &GovernanceInstruction{ChangeQuorumMsg: m}, nil
	case *AddValidatorMsg:
		return &GovernanceInstruction{AddValidatorMsg: m}, nil
	case *RemoveValidatorMsg:
		return &GovernanceInstruction{RemoveValidatorMsg: m}, nil
	default:
		return nil, errors.WithType(errors.ErrInvalidMsg, msg)
	}
}

// EncodeInstruction returns the proposal payload for given governance
// message.
func EncodeInstruction(msg quorum.Msg) ([]byte, error) {
	ins, err := NewInstruction(msg)
	if err != nil {
		return nil, err
	}
	return ins.Marshal()
}

// DecodeInstruction parses a proposal payload and returns the validated
// governance message it carries.
func DecodeInstruction(payload []byte) (quorum.Msg, error) {
	var ins GovernanceInstruction
	if err := ins.Unmarshal(payload); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	msg, err := ins.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}
