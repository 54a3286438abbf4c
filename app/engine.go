package app

import (
	"context"
	"sync"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/utils"
	"github.com/iov-one/quorum/x/validators"
	"github.com/iov-one/quorum/x/vault"
	"github.com/tendermint/tendermint/libs/log"
)

// Engine is the in-process API of the quorum engine. Calls are
// serialized and each one is applied to the store atomically: either all
// of its writes persist or none do.
//
// The handler must authenticate callers with CallerAuth.
type Engine struct {
	mu      sync.Mutex
	db      quorum.CacheableKVStore
	handler quorum.Handler
	logger  log.Logger
	// height counts the calls made, standing in for a block height.
	height int64
}

// NewEngine returns an engine operating on db.
func NewEngine(db quorum.CacheableKVStore, handler quorum.Handler) *Engine {
	return &Engine{
		db:      db,
		handler: handler,
		logger:  log.NewNopLogger(),
	}
}

// WithLogger sets the logger passed to all handlers.
func (e *Engine) WithLogger(logger log.Logger) *Engine {
	e.logger = logger
	return e
}

// InitGenesis loads the initial state. Nothing is written if any
// initializer fails.
func (e *Engine) InitGenesis(opts quorum.Options, init quorum.Initializer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return utils.Atomic(e.db, func(db quorum.KVStore) error {
		return init.FromGenesis(opts, db)
	})
}

// Deliver processes msg on behalf of caller.
func (e *Engine) Deliver(ctx quorum.Context, caller quorum.Condition, msg quorum.Msg) (*quorum.DeliverResult, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "no message")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.height++
	ctx = e.context(ctx)
	if caller != nil {
		ctx = withCaller(ctx, caller)
	}
	tx := &engineTx{msg: msg}

	var res *quorum.DeliverResult
	err := utils.Atomic(e.db, func(db quorum.KVStore) error {
		var err error
		res, err = e.handler.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) context(ctx quorum.Context) quorum.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := quorum.GetHeight(ctx); !ok {
		ctx = quorum.WithHeight(ctx, e.height)
	}
	if quorum.GetLogger(ctx) == quorum.DefaultLogger {
		ctx = quorum.WithLogger(ctx, e.logger)
	}
	return ctx
}

// Propose creates a proposal and returns its identifier.
func (e *Engine) Propose(ctx quorum.Context, caller quorum.Condition, target quorum.Address, payload []byte) ([]byte, error) {
	res, err := e.Deliver(ctx, caller, &proposals.ProposeMsg{Target: target, Payload: payload})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Approve records the approval of caller.
func (e *Engine) Approve(ctx quorum.Context, caller quorum.Condition, id []byte) error {
	_, err := e.Deliver(ctx, caller, &proposals.ApproveMsg{ProposalID: id})
	return err
}

// Revoke withdraws the approval of caller.
func (e *Engine) Revoke(ctx quorum.Context, caller quorum.Condition, id []byte) error {
	_, err := e.Deliver(ctx, caller, &proposals.RevokeMsg{ProposalID: id})
	return err
}

// Execute runs an approved proposal. Anyone may call it.
func (e *Engine) Execute(ctx quorum.Context, caller quorum.Condition, id []byte) (*quorum.DeliverResult, error) {
	return e.Deliver(ctx, caller, &proposals.ExecuteMsg{ProposalID: id})
}

// Deposit credits the engine account.
func (e *Engine) Deposit(ctx quorum.Context, caller quorum.Condition, amount int64) error {
	_, err := e.Deliver(ctx, caller, &vault.DepositMsg{Amount: amount})
	return err
}

// ApprovalCount returns the number of approvals recorded for a proposal.
func (e *Engine) ApprovalCount(id []byte) (int, error) {
	p, err := e.Proposal(id)
	if err != nil {
		return 0, err
	}
	return len(p.Approvers), nil
}

// Proposal returns a proposal by its identifier.
func (e *Engine) Proposal(id []byte) (*proposals.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return proposals.NewProposalBucket().GetProposal(e.db, id)
}

// Validators returns the current members of the electorate.
func (e *Engine) Validators() ([]quorum.Address, error) {
	el, err := e.electorate()
	if err != nil {
		return nil, err
	}
	return el.Members, nil
}

// Quorum returns the current approval threshold.
func (e *Engine) Quorum() (uint32, error) {
	el, err := e.electorate()
	if err != nil {
		return 0, err
	}
	return el.Quorum, nil
}

func (e *Engine) electorate() (*validators.Electorate, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return validators.NewElectorateBucket().GetElectorate(e.db)
}

// Balance returns the vault balance of addr.
func (e *Engine) Balance(addr quorum.Address) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return vault.NewController().Balance(e.db, addr)
}

// engineTx carries a single message into the handler stack.
type engineTx struct {
	msg quorum.Msg
}

var _ quorum.Tx = (*engineTx)(nil)

func (tx *engineTx) GetMsg() (quorum.Msg, error) {
	return tx.msg, nil
}

func (tx *engineTx) Marshal() ([]byte, error) {
	return tx.msg.Marshal()
}

func (tx *engineTx) Unmarshal(raw []byte) error {
	return errors.Wrap(errors.ErrHuman, "engine transactions are not decoded")
}
