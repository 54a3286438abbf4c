package vault

import (
	"math"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Controller moves value between accounts.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller using the default bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Balance returns the amount held by given address.
func (c Controller) Balance(db quorum.ReadOnlyKVStore, addr quorum.Address) (int64, error) {
	acc, err := c.bucket.GetAccount(db, addr)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// Deposit credits given address with a positive amount.
func (c Controller) Deposit(db quorum.KVStore, to quorum.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non positive deposit %d", amount)
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	acc, err := c.bucket.GetAccount(db, to)
	if err != nil {
		return err
	}
	if acc.Amount > math.MaxInt64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	acc.Amount += amount
	return c.bucket.SaveAccount(db, to, acc)
}

// Transfer moves amount from one account to another. It fails if the
// source does not hold enough value.
func (c Controller) Transfer(db quorum.KVStore, from, to quorum.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non positive transfer %d", amount)
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	src, err := c.bucket.GetAccount(db, from)
	if err != nil {
		return err
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, want %d", src.Amount, amount)
	}
	src.Amount -= amount
	if err := c.bucket.SaveAccount(db, from, src); err != nil {
		return err
	}
	return c.Deposit(db, to, amount)
}
