package proposals

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

// Initializer stores the proposals configuration from genesis. Fields that
// are not set in genesis, or a missing configuration entry, fall back to
// DefaultConfiguration.
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	conf := DefaultConfiguration()
	err := gconf.InitConfig(db, opts, packageName, &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
