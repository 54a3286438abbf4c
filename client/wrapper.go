package client

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/vault"
)

// WatchTx blocks until the transaction is part of a block. A transaction
// committed before the call is found by its id, otherwise the result of
// the subscription is awaited until ctx is done.
func (c *Client) WatchTx(ctx context.Context, id TransactionID) (*CommitResult, error) {
	subctx, cancel := context.WithCancel(ctx)
	defer cancel()

	txs := make(chan CommitResult, 1)
	if err := c.SubscribeTx(subctx, QueryTxByID(id), txs); err != nil {
		return nil, err
	}
	if res, err := c.GetTxByID(ctx, id); err == nil && res != nil {
		return res, nil
	}

	select {
	case res, ok := <-txs:
		if !ok {
			return nil, errors.Wrap(errors.ErrNetwork, "subscription closed before result")
		}
		return &res, nil
	case <-ctx.Done():
		return nil, errors.Wrap(errors.ErrNetwork, ctx.Err().Error())
	}
}

// CommitTx submits the transaction and waits until it is part of a block.
// A transaction rejected by DeliverTx is reported as an error of the kind
// the engine returned.
func (c *Client) CommitTx(ctx context.Context, tx quorum.Tx) (*CommitResult, error) {
	id, err := c.SubmitTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	res, err := c.WatchTx(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Err != nil {
		return res, res.Err
	}
	return res, nil
}

// ProposalResult is the state of a proposal right after a committed
// lifecycle transaction.
type ProposalResult struct {
	ID       []byte
	Height   int64
	Proposal *proposals.Proposal
}

// CommitProposalTx commits a transaction carrying a propose, approve,
// revoke or execute message and loads the proposal it changed.
func (c *Client) CommitProposalTx(ctx context.Context, tx quorum.Tx) (*ProposalResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var id []byte
	switch m := msg.(type) {
	case *proposals.ProposeMsg:
		// id is known only once the engine derived it
	case *proposals.ApproveMsg:
		id = m.ProposalID
	case *proposals.RevokeMsg:
		id = m.ProposalID
	case *proposals.ExecuteMsg:
		id = m.ProposalID
	default:
		return nil, errors.WithType(errors.ErrInvalidMsg, msg)
	}

	res, err := c.CommitTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	if id == nil {
		if res.Result == nil || len(res.Result.Data) == 0 {
			return nil, errors.Wrap(errors.ErrInvalidState, "no proposal id in result")
		}
		id = res.Result.Data
	}
	p, err := c.Proposal(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProposalResult{ID: id, Height: res.Height, Proposal: p}, nil
}

// CommitDepositTx commits a deposit and returns the engine balance that
// results from it.
func (c *Client) CommitDepositTx(ctx context.Context, tx quorum.Tx, engine quorum.Address) (int64, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return 0, errors.Wrap(err, "load msg")
	}
	if _, ok := msg.(*vault.DepositMsg); !ok {
		return 0, errors.WithType(errors.ErrInvalidMsg, msg)
	}
	if _, err := c.CommitTx(ctx, tx); err != nil {
		return 0, err
	}
	return c.Balance(ctx, engine)
}
