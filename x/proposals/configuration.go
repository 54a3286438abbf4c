package proposals

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

const packageName = "proposals"

// Value forwarding policies.
const (
	// ValuePolicyNone never moves value on execution.
	ValuePolicyNone = "none"
	// ValuePolicyAll forwards the whole engine balance to the target.
	ValuePolicyAll = "all"
)

// EngineCondition is the condition whose address identifies the engine
// unless the configuration overrides it.
var EngineCondition = quorum.NewCondition("proposals", "engine", []byte("self"))

// Configuration is the runtime configuration of the proposals extension.
type Configuration struct {
	// EngineAddress is the address a proposal must target to govern the
	// engine itself. It also owns the engine vault account.
	EngineAddress quorum.Address `protobuf:"bytes,1,opt,name=engine_address,json=engineAddress,proto3,casttype=github.com/iov-one/quorum.Address" json:"engine_address"`
	// ValuePolicy is one of "none" or "all".
	ValuePolicy string `protobuf:"bytes,2,opt,name=value_policy,json=valuePolicy,proto3" json:"value_policy"`
}

var _ gconf.Configuration = (*Configuration)(nil)

// DefaultConfiguration is used when genesis does not configure the package.
func DefaultConfiguration() Configuration {
	return Configuration{
		EngineAddress: EngineCondition.Address(),
		ValuePolicy:   ValuePolicyNone,
	}
}

func (c *Configuration) Validate() error {
	if err := c.EngineAddress.Validate(); err != nil {
		return errors.Wrap(err, "engine address")
	}
	switch c.ValuePolicy {
	case "", ValuePolicyNone, ValuePolicyAll:
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown value policy %q", c.ValuePolicy)
	}
}

// loadConfiguration returns the stored configuration or the default one.
func loadConfiguration(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	case err != nil:
		return conf, errors.Wrap(err, "load configuration")
	}
	if conf.ValuePolicy == "" {
		conf.ValuePolicy = ValuePolicyNone
	}
	return conf, nil
}

// EngineAddress returns the configured address of the engine.
func EngineAddress(db quorum.ReadOnlyKVStore) (quorum.Address, error) {
	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}
	return conf.EngineAddress, nil
}
