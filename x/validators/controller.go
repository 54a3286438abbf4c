package validators

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Controller reads and modifies the electorate. All modifications after
// initialization require a live Capability.
type Controller struct {
	bucket    ElectorateBucket
	authority *Authority
}

// NewController returns a controller together with the only authority able
// to mint capabilities accepted by it.
func NewController() (*Controller, *Authority) {
	a := newAuthority()
	ctrl := &Controller{
		bucket:    NewElectorateBucket(),
		authority: a,
	}
	return ctrl, a
}

// Initialize creates the electorate. It can be called only once.
func (c *Controller) Initialize(db quorum.KVStore, threshold uint32, members []quorum.Address) error {
	switch ok, err := c.bucket.Has(db, currentKey); {
	case err != nil:
		return errors.Wrap(err, "cannot check electorate")
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "electorate already initialized")
	}
	e := &Electorate{
		Members: append([]quorum.Address(nil), members...),
		Quorum:  threshold,
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return c.bucket.SaveElectorate(db, e)
}

// Add appends a new validator.
func (c *Controller) Add(db quorum.KVStore, capability *Capability, validator quorum.Address) error {
	if err := c.authority.authorize(capability); err != nil {
		return err
	}
	if err := validator.Validate(); err != nil {
		return errors.Wrap(err, "validator")
	}
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return err
	}
	if e.Contains(validator) {
		return errors.Wrapf(ErrDuplicateValidator, "already a validator: %s", validator)
	}
	e.Members = append(e.Members, validator)
	return c.bucket.SaveElectorate(db, e)
}

// Remove deletes a validator. Removing a validator so that the quorum can
// no longer be reached fails and leaves the electorate unchanged.
func (c *Controller) Remove(db quorum.KVStore, capability *Capability, validator quorum.Address) error {
	if err := c.authority.authorize(capability); err != nil {
		return err
	}
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return err
	}
	idx := quorum.AddressIndex(e.Members, validator)
	if idx < 0 {
		return errors.Wrapf(ErrUnknownValidator, "validator doesn't exist: %s", validator)
	}
	if int(e.Quorum) > len(e.Members)-1 {
		return errors.Wrapf(ErrInvalidQuorum,
			"quorum %d cannot be greater than the number of validators %d", e.Quorum, len(e.Members)-1)
	}
	members := make([]quorum.Address, 0, len(e.Members)-1)
	members = append(members, e.Members[:idx]...)
	e.Members = append(members, e.Members[idx+1:]...)
	return c.bucket.SaveElectorate(db, e)
}

// ChangeQuorum replaces the quorum.
func (c *Controller) ChangeQuorum(db quorum.KVStore, capability *Capability, threshold uint32) error {
	if err := c.authority.authorize(capability); err != nil {
		return err
	}
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return err
	}
	if threshold == 0 || int(threshold) > len(e.Members) {
		return errors.Wrapf(ErrInvalidQuorum,
			"quorum %d must be between 1 and the number of validators %d", threshold, len(e.Members))
	}
	e.Quorum = threshold
	return c.bucket.SaveElectorate(db, e)
}

// Electorate returns the current electorate.
func (c *Controller) Electorate(db quorum.ReadOnlyKVStore) (*Electorate, error) {
	return c.bucket.GetElectorate(db)
}

// Contains returns true if given identity is a validator.
func (c *Controller) Contains(db quorum.ReadOnlyKVStore, identity quorum.Address) (bool, error) {
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return false, err
	}
	return e.Contains(identity), nil
}

// Size returns the number of validators.
func (c *Controller) Size(db quorum.ReadOnlyKVStore) (int, error) {
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return 0, err
	}
	return len(e.Members), nil
}

// Members returns the validators in insertion order.
func (c *Controller) Members(db quorum.ReadOnlyKVStore) ([]quorum.Address, error) {
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return nil, err
	}
	return e.Members, nil
}

// Quorum returns the number of distinct approvals required to execute a
// proposal.
func (c *Controller) Quorum(db quorum.ReadOnlyKVStore) (uint32, error) {
	e, err := c.bucket.GetElectorate(db)
	if err != nil {
		return 0, err
	}
	return e.Quorum, nil
}
