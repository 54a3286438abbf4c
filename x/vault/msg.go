package vault

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const pathDepositMsg = "vault/deposit"

// DepositMsg credits the engine account.
type DepositMsg struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount"`
}

var _ quorum.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return pathDepositMsg
}

func (m *DepositMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non positive deposit %d", m.Amount)
	}
	return nil
}
