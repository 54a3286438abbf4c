package proposals

import (
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Tracker records validator approvals of proposals.
//
// Membership is checked when approving. An approval given by a validator
// that is later removed keeps counting.
type Tracker struct {
	bucket     ProposalBucket
	validators ValidatorSet
}

// NewTracker returns a tracker of approvals.
func NewTracker(set ValidatorSet) *Tracker {
	return &Tracker{
		bucket:     NewProposalBucket(),
		validators: set,
	}
}

// Approve adds the caller to the approvers of a pending proposal.
func (t *Tracker) Approve(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, id []byte) error {
	p, err := t.pending(db, caller, id)
	if err != nil {
		return err
	}
	if p.HasApproved(caller) {
		return errors.Wrapf(ErrAlreadyApproved, "validator %s", caller)
	}
	p.Approvers = append(p.Approvers, caller)
	if err := t.bucket.SaveProposal(db, id, p); err != nil {
		return err
	}
	quorum.GetLogger(ctx).Info("proposal approved",
		"proposal", fmt.Sprintf("%X", id), "validator", caller.String(), "approvals", len(p.Approvers))
	return nil
}

// Revoke removes the caller from the approvers of a pending proposal.
func (t *Tracker) Revoke(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, id []byte) error {
	p, err := t.pending(db, caller, id)
	if err != nil {
		return err
	}
	idx := quorum.AddressIndex(p.Approvers, caller)
	if idx < 0 {
		return errors.Wrapf(ErrNotApproved, "validator %s", caller)
	}
	approvers := make([]quorum.Address, 0, len(p.Approvers)-1)
	approvers = append(approvers, p.Approvers[:idx]...)
	p.Approvers = append(approvers, p.Approvers[idx+1:]...)
	if err := t.bucket.SaveProposal(db, id, p); err != nil {
		return err
	}
	quorum.GetLogger(ctx).Info("approval revoked",
		"proposal", fmt.Sprintf("%X", id), "validator", caller.String(), "approvals", len(p.Approvers))
	return nil
}

// ApprovalCount returns the number of distinct approvals of a proposal.
func (t *Tracker) ApprovalCount(db quorum.ReadOnlyKVStore, id []byte) (int, error) {
	p, err := t.bucket.GetProposal(db, id)
	if err != nil {
		return 0, err
	}
	return len(p.Approvers), nil
}

// pending loads a proposal that the caller, who must be a validator, can
// still approve or revoke.
func (t *Tracker) pending(db quorum.KVStore, caller quorum.Address, id []byte) (*Proposal, error) {
	if err := requireValidator(db, t.validators, caller); err != nil {
		return nil, err
	}
	p, err := t.bucket.GetProposal(db, id)
	if err != nil {
		return nil, err
	}
	if p.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "id %X", id)
	}
	return p, nil
}
