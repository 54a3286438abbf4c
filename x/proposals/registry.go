package proposals

import (
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/validators"
)

// ValidatorSet is the view of the electorate proposals depend on.
type ValidatorSet interface {
	Contains(db quorum.ReadOnlyKVStore, identity quorum.Address) (bool, error)
	Quorum(db quorum.ReadOnlyKVStore) (uint32, error)
}

var _ ValidatorSet = (*validators.Controller)(nil)

// requireValidator fails with ErrNotAValidator unless identity is a member
// of the electorate.
func requireValidator(db quorum.ReadOnlyKVStore, set ValidatorSet, identity quorum.Address) error {
	ok, err := set.Contains(db, identity)
	if err != nil {
		return errors.Wrap(err, "cannot check validator")
	}
	if !ok {
		return errors.Wrapf(validators.ErrNotAValidator, "%s", identity)
	}
	return nil
}

// Registry creates proposals and owns their records.
type Registry struct {
	bucket     ProposalBucket
	validators ValidatorSet
	id         IDFunc
}

// NewRegistry returns a registry deriving proposal identifiers with given
// function. Keccak256ID is used if id is nil.
func NewRegistry(set ValidatorSet, id IDFunc) *Registry {
	if id == nil {
		id = Keccak256ID
	}
	return &Registry{
		bucket:     NewProposalBucket(),
		validators: set,
		id:         id,
	}
}

// Propose creates a new proposal and returns its identifier. The proposer
// does not implicitly approve it.
func (r *Registry) Propose(ctx quorum.Context, db quorum.KVStore, proposer, target quorum.Address, payload []byte) ([]byte, error) {
	if err := requireValidator(db, r.validators, proposer); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, errors.Wrap(err, "target")
	}

	id := r.id(proposer, target, payload)
	switch exists, err := r.bucket.Has(db, id); {
	case err != nil:
		return nil, errors.Wrap(err, "cannot check proposal")
	case exists:
		return nil, errors.Wrapf(ErrProposalExists, "id %X", id)
	}

	height, _ := quorum.GetHeight(ctx)
	p := &Proposal{
		Proposer:      proposer,
		Target:        target,
		Payload:       payload,
		CreatedHeight: height,
	}
	if err := r.bucket.SaveProposal(db, id, p); err != nil {
		return nil, err
	}
	quorum.GetLogger(ctx).Info("proposal created",
		"proposal", fmt.Sprintf("%X", id), "proposer", proposer.String(), "target", target.String())
	return id, nil
}

// Get returns the proposal with given identifier.
func (r *Registry) Get(db quorum.ReadOnlyKVStore, id []byte) (*Proposal, error) {
	return r.bucket.GetProposal(db, id)
}
