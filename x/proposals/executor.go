package proposals

import (
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/utils"
	"github.com/iov-one/quorum/x/validators"
	"github.com/iov-one/quorum/x/vault"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	tagProposalID = "proposal-id"
	tagAction     = "action"
	tagTarget     = "target"
)

// Executor runs approved proposals exactly once.
type Executor struct {
	bucket     ProposalBucket
	validators ValidatorSet
	authority  *validators.Authority
	governance quorum.Deliverer
	dispatcher Dispatcher
	vault      vault.Controller
}

// NewExecutor returns an executor. Self targeted proposals are decoded as
// governance instructions and delivered to governance together with a
// capability minted by authority. All other proposals go to dispatcher.
func NewExecutor(set ValidatorSet, authority *validators.Authority, governance quorum.Deliverer, dispatcher Dispatcher) *Executor {
	if dispatcher == nil {
		dispatcher = NewTargetRouter()
	}
	return &Executor{
		bucket:     NewProposalBucket(),
		validators: set,
		authority:  authority,
		governance: governance,
		dispatcher: dispatcher,
		vault:      vault.NewController(),
	}
}

// Execute dispatches an approved proposal and marks it executed. The caller
// does not need to be a validator. Either every change made by the dispatch
// is persisted together with the executed flag, or nothing is.
func (e *Executor) Execute(ctx quorum.Context, db quorum.CacheableKVStore, caller quorum.Address, id []byte) (*quorum.DeliverResult, error) {
	p, err := e.bucket.GetProposal(db, id)
	if err != nil {
		return nil, err
	}
	if p.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "id %X", id)
	}
	threshold, err := e.validators.Quorum(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read quorum")
	}
	if len(p.Approvers) < int(threshold) {
		return nil, errors.Wrapf(ErrQuorumNotMet, "%d of %d approvals", len(p.Approvers), threshold)
	}
	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}

	ctx = quorum.WithLogInfo(ctx, "proposal", fmt.Sprintf("%X", id))
	err = utils.Atomic(db, func(cache quorum.KVStore) error {
		if p.Target.Equals(conf.EngineAddress) {
			if err := e.govern(ctx, cache, id, p); err != nil {
				return err
			}
		} else if err := e.dispatch(ctx, cache, conf, p); err != nil {
			return err
		}

		p.Executed = true
		p.ExecutedHeight, _ = quorum.GetHeight(ctx)
		return e.bucket.SaveProposal(cache, id, p)
	})
	if err != nil {
		quorum.GetLogger(ctx).Debug("execution failed", "err", err)
		return nil, err
	}

	quorum.GetLogger(ctx).Info("proposal executed", "caller", caller.String(), "target", p.Target.String())
	return &quorum.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			quorum.Tag(tagProposalID, id),
			quorum.Tag(tagAction, []byte("execute")),
			quorum.Tag(tagTarget, p.Target),
		},
	}, nil
}

// govern applies a self targeted proposal while holding a capability bound
// to it.
func (e *Executor) govern(ctx quorum.Context, db quorum.KVStore, id []byte, p *Proposal) error {
	msg, err := validators.DecodeInstruction(p.Payload)
	if err != nil {
		return errors.Wrap(errors.Append(ErrExternalCallFailed, err), "governance instruction")
	}
	ctx, release := e.authority.Grant(ctx, id, p.Target, p.Payload)
	defer release()

	if _, err := e.governance.Deliver(ctx, db, &instructionTx{msg: msg, raw: p.Payload}); err != nil {
		return err
	}
	return nil
}

// dispatch forwards value according to the configured policy and calls the
// external target.
func (e *Executor) dispatch(ctx quorum.Context, db quorum.KVStore, conf Configuration, p *Proposal) error {
	call := Call{Target: p.Target, Payload: p.Payload}
	if conf.ValuePolicy == ValuePolicyAll {
		balance, err := e.vault.Balance(db, conf.EngineAddress)
		if err != nil {
			return err
		}
		if balance > 0 {
			if err := e.vault.Transfer(db, conf.EngineAddress, p.Target, balance); err != nil {
				return errors.Wrap(err, "forward value")
			}
			call.Value = balance
		}
	}
	return e.dispatcher.Dispatch(ctx, db, call)
}

// instructionTx carries a decoded governance instruction through a handler.
type instructionTx struct {
	msg quorum.Msg
	raw []byte
}

var _ quorum.Tx = (*instructionTx)(nil)

func (tx *instructionTx) GetMsg() (quorum.Msg, error) {
	return tx.msg, nil
}

func (tx *instructionTx) Marshal() ([]byte, error) {
	return tx.raw, nil
}

func (tx *instructionTx) Unmarshal(raw []byte) error {
	msg, err := validators.DecodeInstruction(raw)
	if err != nil {
		return err
	}
	tx.msg, tx.raw = msg, raw
	return nil
}
