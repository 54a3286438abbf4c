package vault

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const optKey = "vault"

// GenesisAccount is the genesis representation of a balance.
type GenesisAccount struct {
	Address quorum.Address `json:"address"`
	Amount  int64          `json:"amount"`
}

// Initializer fulfils the Initializer interface to load balances from the
// genesis file.
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis credits every listed account.
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	var accounts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return err
	}
	ctrl := NewController()
	for i, a := range accounts {
		if err := ctrl.Deposit(db, a.Address, a.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
