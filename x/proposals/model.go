package proposals

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// Proposal is a call waiting for enough validator approvals.
type Proposal struct {
	Proposer       quorum.Address   `protobuf:"bytes,1,opt,name=proposer,proto3,casttype=github.com/iov-one/quorum.Address" json:"proposer"`
	Target         quorum.Address   `protobuf:"bytes,2,opt,name=target,proto3,casttype=github.com/iov-one/quorum.Address" json:"target"`
	Payload        []byte           `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload"`
	Approvers      []quorum.Address `protobuf:"bytes,4,rep,name=approvers,proto3,casttype=github.com/iov-one/quorum.Address" json:"approvers"`
	Executed       bool             `protobuf:"varint,5,opt,name=executed,proto3" json:"executed"`
	CreatedHeight  int64            `protobuf:"varint,6,opt,name=created_height,json=createdHeight,proto3" json:"created_height"`
	ExecutedHeight int64            `protobuf:"varint,7,opt,name=executed_height,json=executedHeight,proto3" json:"executed_height"`
}

var _ orm.CloneableData = (*Proposal)(nil)

func (p *Proposal) Validate() error {
	if err := p.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	if err := p.Target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	for i, a := range p.Approvers {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "approver %d", i)
		}
		if quorum.AddressIndex(p.Approvers[:i], a) >= 0 {
			return errors.Wrapf(errors.ErrDuplicate, "approver %s", a)
		}
	}
	if !p.Executed && p.ExecutedHeight != 0 {
		return errors.Wrap(errors.ErrInvalidModel, "execution height of a pending proposal")
	}
	return nil
}

func (p *Proposal) Copy() orm.CloneableData {
	approvers := make([]quorum.Address, len(p.Approvers))
	for i, a := range p.Approvers {
		approvers[i] = append(quorum.Address(nil), a...)
	}
	return &Proposal{
		Proposer:       append(quorum.Address(nil), p.Proposer...),
		Target:         append(quorum.Address(nil), p.Target...),
		Payload:        append([]byte(nil), p.Payload...),
		Approvers:      approvers,
		Executed:       p.Executed,
		CreatedHeight:  p.CreatedHeight,
		ExecutedHeight: p.ExecutedHeight,
	}
}

// HasApproved returns true if given validator approved this proposal.
func (p *Proposal) HasApproved(validator quorum.Address) bool {
	return quorum.AddressIndex(p.Approvers, validator) >= 0
}

// ProposalBucket stores proposals by their identifier.
type ProposalBucket struct {
	orm.Bucket
}

// NewProposalBucket returns a bucket for proposals.
func NewProposalBucket() ProposalBucket {
	return ProposalBucket{
		Bucket: orm.NewBucket("proposal", orm.NewSimpleObj(nil, &Proposal{})),
	}
}

// GetProposal loads a proposal. ErrProposalNotFound is returned if it does
// not exist.
func (b ProposalBucket) GetProposal(db quorum.ReadOnlyKVStore, id []byte) (*Proposal, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load proposal")
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(ErrProposalNotFound, "id %X", id)
	}
	p, ok := obj.Value().(*Proposal)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, obj.Value())
	}
	return p, nil
}

// SaveProposal validates and stores a proposal.
func (b ProposalBucket) SaveProposal(db quorum.KVStore, id []byte, p *Proposal) error {
	return b.Save(db, orm.NewSimpleObj(id, p))
}
