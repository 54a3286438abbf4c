package vault

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// Account is the balance held by a single address.
type Account struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount"`
}

var _ orm.CloneableData = (*Account)(nil)

func (a *Account) Validate() error {
	if a.Amount < 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "negative balance %d", a.Amount)
	}
	return nil
}

func (a *Account) Copy() orm.CloneableData {
	return &Account{Amount: a.Amount}
}

// Bucket stores accounts by address.
type Bucket struct {
	orm.Bucket
}

// NewBucket returns a bucket for accounts.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket("vault", orm.NewSimpleObj(nil, &Account{})),
	}
}

// GetAccount returns the account of given address. A missing account is
// returned as an empty one.
func (b Bucket) GetAccount(db quorum.ReadOnlyKVStore, addr quorum.Address) (*Account, error) {
	obj, err := b.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load account")
	}
	if obj == nil || obj.Value() == nil {
		return &Account{}, nil
	}
	acc, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, obj.Value())
	}
	return acc, nil
}

// SaveAccount stores the account of given address. Empty accounts are
// removed.
func (b Bucket) SaveAccount(db quorum.KVStore, addr quorum.Address, acc *Account) error {
	if acc.Amount == 0 {
		return b.Delete(db, addr)
	}
	return b.Save(db, orm.NewSimpleObj(addr, acc))
}
