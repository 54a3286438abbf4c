package validators

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const optKey = "validators"

// Genesis is the genesis representation of the electorate.
type Genesis struct {
	Quorum  uint32           `json:"quorum"`
	Members []quorum.Address `json:"members"`
}

// Initializer fulfils the Initializer interface to load the electorate from
// the genesis file.
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis will parse the initial electorate from genesis and save it to
// the database. Nothing is done if the genesis does not declare it.
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	if _, ok := opts[optKey]; !ok {
		return nil
	}
	var g Genesis
	if err := opts.ReadOptions(optKey, &g); err != nil {
		return err
	}
	ctrl := &Controller{bucket: NewElectorateBucket()}
	if err := ctrl.Initialize(db, g.Quorum, g.Members); err != nil {
		return errors.Wrap(err, "cannot initialize electorate")
	}
	return nil
}
