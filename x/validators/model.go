package validators

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// currentKey is the key under which the only electorate is stored.
var currentKey = []byte("current")

// ElectorateKey returns the query key of the electorate under /validators.
func ElectorateKey() []byte {
	return append([]byte(nil), currentKey...)
}

// Electorate is the validator set together with the quorum policy.
// Members keep insertion order.
type Electorate struct {
	Members []quorum.Address `protobuf:"bytes,1,rep,name=members,proto3,casttype=github.com/iov-one/quorum.Address" json:"members"`
	Quorum  uint32           `protobuf:"varint,2,opt,name=quorum,proto3" json:"quorum"`
}

var _ orm.CloneableData = (*Electorate)(nil)

// Validate ensures the quorum can be reached by the members and that no
// member is listed twice.
func (e *Electorate) Validate() error {
	if e.Quorum == 0 {
		return errors.Wrap(ErrInvalidQuorum, "quorum must be greater than zero")
	}
	if int(e.Quorum) > len(e.Members) {
		return errors.Wrapf(ErrInvalidQuorum,
			"quorum %d greater than the number of validators %d", e.Quorum, len(e.Members))
	}
	for i, m := range e.Members {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
		if quorum.AddressIndex(e.Members[:i], m) >= 0 {
			return errors.Wrapf(ErrDuplicateValidator, "member %s", m)
		}
	}
	return nil
}

// Copy makes a deep copy of the electorate.
func (e *Electorate) Copy() orm.CloneableData {
	members := make([]quorum.Address, len(e.Members))
	for i, m := range e.Members {
		members[i] = append(quorum.Address(nil), m...)
	}
	return &Electorate{
		Members: members,
		Quorum:  e.Quorum,
	}
}

// Contains returns true if given address is a member.
func (e *Electorate) Contains(addr quorum.Address) bool {
	return quorum.AddressIndex(e.Members, addr) >= 0
}

// ElectorateBucket stores the electorate singleton.
type ElectorateBucket struct {
	orm.Bucket
}

// NewElectorateBucket returns a bucket for the electorate.
func NewElectorateBucket() ElectorateBucket {
	return ElectorateBucket{
		Bucket: orm.NewBucket("electorate", orm.NewSimpleObj(nil, &Electorate{})),
	}
}

// GetElectorate loads the current electorate. ErrNotFound is returned if
// it was never initialized.
func (b ElectorateBucket) GetElectorate(db quorum.ReadOnlyKVStore) (*Electorate, error) {
	obj, err := b.Get(db, currentKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load electorate")
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "electorate not initialized")
	}
	e, ok := obj.Value().(*Electorate)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, obj.Value())
	}
	return e, nil
}

// SaveElectorate validates and stores the electorate.
func (b ElectorateBucket) SaveElectorate(db quorum.KVStore, e *Electorate) error {
	return b.Save(db, orm.NewSimpleObj(currentKey, e))
}
