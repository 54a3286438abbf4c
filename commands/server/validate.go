package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/tendermint/tendermint/libs/log"
)

// ValidateCmd loads every given genesis file into a throwaway store and
// reports the first one the initializer rejects.
func ValidateCmd(ini quorum.Initializer, logger log.Logger, args []string) error {
	if len(args) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "usage: cmd validate <genesis.json>...")
	}
	if err := ValidateGenesis(ini, args); err != nil {
		return err
	}
	logger.Info("Genesis valid", "files", len(args))
	return nil
}

// ValidateGenesis returns an error unless the app_state of every genesis
// file can be loaded by ini.
func ValidateGenesis(ini quorum.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini quorum.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(errors.ErrNotFound, err.Error())
	}

	var genesis struct {
		State quorum.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot JSON deserialize genesis: %s", err)
	}
	if len(genesis.State) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()
	if err := ini.FromGenesis(genesis.State, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
