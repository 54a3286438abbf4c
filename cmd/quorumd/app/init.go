package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/commands/server"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/validators"
	"github.com/iov-one/quorum/x/vault"
	abci "github.com/tendermint/tendermint/abci/types"
)

// genesis is the app_state produced by GenInitOptions.
type genesis struct {
	Validators validators.Genesis         `json:"validators"`
	Vault      []vault.GenesisAccount     `json:"vault"`
	Conf       map[string]json.RawMessage `json:"conf"`
}

// GenInitOptions will produce the options of a single engine for dev mode.
//
// The first argument is the quorum, all following arguments are the
// validator addresses. When no validator is given, a key is generated and
// printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	threshold := uint64(1)
	if len(args) > 0 {
		var err error
		threshold, err = strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid quorum %q", args[0])
		}
	}

	var members []quorum.Address
	if len(args) > 1 {
		for _, enc := range args[1:] {
			addr, err := quorum.ParseAddress(enc)
			if err != nil {
				return nil, errors.Wrapf(err, "validator %q", enc)
			}
			members = append(members, addr)
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		addr, keys, err := GenerateValidatorKey()
		if err != nil {
			return nil, err
		}
		members = append(members, addr)
		fmt.Println(keys)
	}

	e := validators.Electorate{Members: members, Quorum: uint32(threshold)}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	conf := proposals.DefaultConfiguration()
	rawConf, err := json.Marshal(&conf)
	if err != nil {
		return nil, errors.Wrap(err, "configuration")
	}

	return json.MarshalIndent(genesis{
		Validators: validators.Genesis{Quorum: e.Quorum, Members: e.Members},
		Vault:      []vault.GenesisAccount{},
		Conf:       map[string]json.RawMessage{"proposals": rawConf},
	}, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "quorum.db")
	}

	application, err := Application("quorum", Stack(nil), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateValidatorKey returns the address of a new public key,
// along with a json representation of the keys.
func GenerateValidatorKey() (quorum.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
