package vault

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// AddressResolver returns the address of the engine account.
type AddressResolver func(db quorum.ReadOnlyKVStore) (quorum.Address, error)

// RegisterRoutes registers the deposit handler.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator, engine AddressResolver) {
	r.Handle(pathDepositMsg, &DepositHandler{
		auth:   auth,
		engine: engine,
		ctrl:   NewController(),
	})
}

// RegisterQuery exposes balances under /vault.
func RegisterQuery(qr quorum.QueryRouter) {
	NewBucket().Register("vault", qr)
}

// DepositHandler credits the engine account with the deposited value.
type DepositHandler struct {
	auth   x.Authenticator
	engine AddressResolver
	ctrl   Controller
}

var _ quorum.Handler = (*DepositHandler)(nil)

func (h *DepositHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *DepositHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	engine, err := h.engine(db)
	if err != nil {
		return nil, errors.Wrap(err, "engine address")
	}
	if err := h.ctrl.Deposit(db, engine, msg.Amount); err != nil {
		return nil, err
	}
	quorum.GetLogger(ctx).Debug("deposit", "from", sender.String(), "amount", msg.Amount)
	return &quorum.DeliverResult{}, nil
}

func (h *DepositHandler) validate(ctx quorum.Context, tx quorum.Tx) (*DepositMsg, quorum.Address, error) {
	var msg *DepositMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender := x.MainSignerAddress(ctx, h.auth)
	if sender == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "deposit must be signed")
	}
	return msg, sender, nil
}
