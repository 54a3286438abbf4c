package client

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/validators"
	"github.com/iov-one/quorum/x/vault"
)

// Proposal returns the proposal stored under given id.
func (c *Client) Proposal(ctx context.Context, id []byte) (*proposals.Proposal, error) {
	var p proposals.Proposal
	found, err := c.queryOne("/proposals", id, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(proposals.ErrProposalNotFound, "%X", id)
	}
	return &p, nil
}

// Electorate returns the current validator set and quorum.
func (c *Client) Electorate(ctx context.Context) (*validators.Electorate, error) {
	var e validators.Electorate
	found, err := c.queryOne("/validators", validators.ElectorateKey(), &e)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrap(errors.ErrNotFound, "electorate")
	}
	return &e, nil
}

// Balance returns the vault balance of given address. Unknown accounts
// hold nothing.
func (c *Client) Balance(ctx context.Context, addr quorum.Address) (int64, error) {
	var acc vault.Account
	if _, err := c.queryOne("/vault", addr, &acc); err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// NextSequence returns the sequence the next signature of given address
// must carry.
func (c *Client) NextSequence(ctx context.Context, addr quorum.Address) (int64, error) {
	var user sigs.UserData
	if _, err := c.queryOne("/auth", addr, &user); err != nil {
		return 0, err
	}
	return user.Sequence, nil
}

// queryOne loads the first result of the query into obj. False is returned
// when the query matched nothing.
func (c *Client) queryOne(path string, key []byte, obj quorum.Persistent) (bool, error) {
	res := c.Query(RequestQuery{Path: path, Data: key})
	if err := errors.ABCIError(res.Code, res.Log); err != nil {
		return false, err
	}
	if len(res.Value) == 0 {
		return false, nil
	}
	var set app.ResultSet
	if err := set.Unmarshal(res.Value); err != nil {
		return false, errors.Wrap(err, "result set")
	}
	if len(set.Results) == 0 {
		return false, nil
	}
	if err := obj.Unmarshal(set.Results[0]); err != nil {
		return false, errors.Wrapf(err, "unmarshal %s result", path)
	}
	return true, nil
}
