package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/validators"
	"github.com/iov-one/quorum/x/vault"
)

// Tx is the transaction accepted by the daemon. It carries a list of
// signatures and exactly one message.
type Tx struct {
	Signatures         []*sigs.StdSignature           `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	ProposeMsg         *proposals.ProposeMsg          `protobuf:"bytes,2,opt,name=propose_msg,json=proposeMsg,proto3" json:"propose_msg,omitempty"`
	ApproveMsg         *proposals.ApproveMsg          `protobuf:"bytes,3,opt,name=approve_msg,json=approveMsg,proto3" json:"approve_msg,omitempty"`
	RevokeMsg          *proposals.RevokeMsg           `protobuf:"bytes,4,opt,name=revoke_msg,json=revokeMsg,proto3" json:"revoke_msg,omitempty"`
	ExecuteMsg         *proposals.ExecuteMsg          `protobuf:"bytes,5,opt,name=execute_msg,json=executeMsg,proto3" json:"execute_msg,omitempty"`
	DepositMsg         *vault.DepositMsg              `protobuf:"bytes,6,opt,name=deposit_msg,json=depositMsg,proto3" json:"deposit_msg,omitempty"`
	ChangeQuorumMsg    *validators.ChangeQuorumMsg    `protobuf:"bytes,7,opt,name=change_quorum_msg,json=changeQuorumMsg,proto3" json:"change_quorum_msg,omitempty"`
	AddValidatorMsg    *validators.AddValidatorMsg    `protobuf:"bytes,8,opt,name=add_validator_msg,json=addValidatorMsg,proto3" json:"add_validator_msg,omitempty"`
	RemoveValidatorMsg *validators.RemoveValidatorMsg `protobuf:"bytes,9,opt,name=remove_validator_msg,json=removeValidatorMsg,proto3" json:"remove_validator_msg,omitempty"`
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (quorum.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ quorum.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps msg into an unsigned transaction.
func NewTx(msg quorum.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *proposals.ProposeMsg:
		tx.ProposeMsg = m
	case *proposals.ApproveMsg:
		tx.ApproveMsg = m
	case *proposals.RevokeMsg:
		tx.RevokeMsg = m
	case *proposals.ExecuteMsg:
		tx.ExecuteMsg = m
	case *vault.DepositMsg:
		tx.DepositMsg = m
	case *validators.ChangeQuorumMsg:
		tx.ChangeQuorumMsg = m
	case *validators.AddValidatorMsg:
		tx.AddValidatorMsg = m
	case *validators.RemoveValidatorMsg:
		tx.RemoveValidatorMsg = m
	default:
		return nil, errors.WithType(errors.ErrInvalidMsg, msg)
	}
	return &tx, nil
}

// GetMsg returns the only message carried by the transaction.
func (tx *Tx) GetMsg() (quorum.Msg, error) {
	var msgs []quorum.Msg
	// make sure to cover all messages declared by the transaction
	if tx.ProposeMsg != nil {
		msgs = append(msgs, tx.ProposeMsg)
	}
	if tx.ApproveMsg != nil {
		msgs = append(msgs, tx.ApproveMsg)
	}
	if tx.RevokeMsg != nil {
		msgs = append(msgs, tx.RevokeMsg)
	}
	if tx.ExecuteMsg != nil {
		msgs = append(msgs, tx.ExecuteMsg)
	}
	if tx.DepositMsg != nil {
		msgs = append(msgs, tx.DepositMsg)
	}
	if tx.ChangeQuorumMsg != nil {
		msgs = append(msgs, tx.ChangeQuorumMsg)
	}
	if tx.AddValidatorMsg != nil {
		msgs = append(msgs, tx.AddValidatorMsg)
	}
	if tx.RemoveValidatorMsg != nil {
		msgs = append(msgs, tx.RemoveValidatorMsg)
	}
	if len(msgs) != 1 {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "transaction must carry exactly one message, got %d", len(msgs))
	}
	return msgs[0], nil
}

// GetSignatures returns the signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
