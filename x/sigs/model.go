package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// UserData tracks the public key and the next expected sequence of a
// signer.
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence"`
}

var _ orm.CloneableData = (*UserData)(nil)

// Validate requires that all fields are set.
func (u *UserData) Validate() error {
	if u.Pubkey == nil {
		return errors.Wrap(errors.ErrEmpty, "pubkey")
	}
	if err := u.Pubkey.Validate(); err != nil {
		return errors.Wrap(err, "pubkey")
	}
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative sequence")
	}
	return nil
}

// Copy makes a new UserData with the same data.
func (u *UserData) Copy() orm.CloneableData {
	var pub *crypto.PublicKey
	if u.Pubkey != nil {
		pub = &crypto.PublicKey{Ed25519: append([]byte(nil), u.Pubkey.Ed25519...)}
	}
	return &UserData{
		Pubkey:   pub,
		Sequence: u.Sequence,
	}
}

// CheckAndIncrementSequence checks that the given sequence is the next
// expected one and bumps the counter.
func (u *UserData) CheckAndIncrementSequence(check int64) error {
	if u.Sequence != check {
		return errors.Wrapf(ErrInvalidSequence, "mismatch %d != %d", check, u.Sequence)
	}
	next := u.Sequence + 1
	// Sequences are exposed to javascript clients that cannot represent
	// integers above 2^53.
	const maxSequenceValue = (1 << 53) - 1
	if next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores UserData under the address of its public key.
type Bucket struct {
	orm.Bucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket("sigs", orm.NewSimpleObj(nil, &UserData{})),
	}
}

// GetOrCreate loads the UserData of given key or initializes a fresh one
// starting at sequence zero.
func (b Bucket) GetOrCreate(db quorum.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	obj, err := b.Get(db, pubkey.Address())
	if err != nil {
		return nil, errors.Wrap(err, "cannot load user")
	}
	if obj == nil || obj.Value() == nil {
		return &UserData{Pubkey: pubkey}, nil
	}
	user, ok := obj.Value().(*UserData)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, obj.Value())
	}
	return user, nil
}

// SaveUser stores given user under its public key address.
func (b Bucket) SaveUser(db quorum.KVStore, user *UserData) error {
	return b.Save(db, orm.NewSimpleObj(user.Pubkey.Address(), user))
}

// NextNonce returns the sequence the next signature of given address must
// carry. Counting starts at zero.
func NextNonce(db quorum.ReadOnlyKVStore, signer quorum.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "bucket get")
	}
	if obj == nil || obj.Value() == nil {
		return 0, nil
	}
	user, ok := obj.Value().(*UserData)
	if !ok {
		return 0, errors.WithType(errors.ErrInvalidModel, obj.Value())
	}
	return user.Sequence, nil
}
