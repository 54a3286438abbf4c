package validators

import (
	"context"
	"sync"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Capability grants the right to mutate the electorate. It is minted by an
// Authority for one approved proposal and stays valid until it is released.
type Capability struct {
	proposalID []byte
	target     quorum.Address
	payload    []byte
}

// ProposalID returns the identifier of the proposal this capability was
// minted for.
func (c *Capability) ProposalID() []byte {
	return c.proposalID
}

// Target returns the address the approved proposal is calling.
func (c *Capability) Target() quorum.Address {
	return c.target
}

// Payload returns the approved call data.
func (c *Capability) Payload() []byte {
	return c.payload
}

// Authority mints capabilities. It must only be handed to the executor of
// approved proposals.
type Authority struct {
	mu   sync.Mutex
	live map[*Capability]struct{}
}

func newAuthority() *Authority {
	return &Authority{live: make(map[*Capability]struct{})}
}

// Grant mints a capability bound to given proposal and returns a context
// carrying it. The capability is valid until the returned release function
// is called.
func (a *Authority) Grant(ctx quorum.Context, proposalID []byte, target quorum.Address, payload []byte) (quorum.Context, func()) {
	c := &Capability{
		proposalID: proposalID,
		target:     target,
		payload:    payload,
	}
	a.mu.Lock()
	a.live[c] = struct{}{}
	a.mu.Unlock()

	release := func() {
		a.mu.Lock()
		delete(a.live, c)
		a.mu.Unlock()
	}
	return context.WithValue(ctx, contextKeyCapability, c), release
}

// authorize returns an error unless the capability was minted by this
// authority and is not yet released.
func (a *Authority) authorize(c *Capability) error {
	if c == nil {
		return errors.Wrap(errors.ErrUnauthorized, "can only be accessed by approving transactions")
	}
	a.mu.Lock()
	_, ok := a.live[c]
	a.mu.Unlock()
	if !ok {
		return errors.Wrap(errors.ErrUnauthorized, "can only be accessed by approving transactions")
	}
	return nil
}

type contextKey int

const (
	contextKeyCapability contextKey = iota
)

// CapabilityFromContext returns the capability stored in the context, or nil.
func CapabilityFromContext(ctx quorum.Context) *Capability {
	c, _ := ctx.Value(contextKeyCapability).(*Capability)
	return c
}
