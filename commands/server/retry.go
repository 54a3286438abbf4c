package server

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	iavlstore "github.com/iov-one/quorum/store/iavl"
	"github.com/tendermint/iavl"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/types"
)

const (
	flagUntilError = "error"
	flagMaxTries   = "max"
)

type retryArgs struct {
	dbPath     string
	blockPath  string
	debug      bool
	untilError bool
	maxTries   int
}

func parseRetryArgs(args []string) (retryArgs, error) {
	if len(args) < 2 {
		return retryArgs{}, errors.Wrap(errors.ErrInvalidInput,
			"usage: cmd retry <path to abci.db> <path to block.json> [-debug] [-error] [-max=N]")
	}
	res := retryArgs{
		dbPath:    args[0],
		blockPath: args[1],
	}
	retryFlags := flag.NewFlagSet("retry", flag.ContinueOnError)
	retryFlags.BoolVar(&res.debug, flagDebug, false, "print out debug info")
	retryFlags.BoolVar(&res.untilError, flagUntilError, false, "retry multiple times until an error appears")
	retryFlags.IntVar(&res.maxTries, flagMaxTries, 10, "maximum number of times to retry if -error is passed")
	if err := retryFlags.Parse(args[2:]); err != nil {
		return res, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return res, nil
}

// InlineAppGenerator builds an application on top of an already opened
// store.
type InlineAppGenerator func(kv quorum.CommitKVStore, logger log.Logger, debug bool) abci.Application

// RetryCmd takes the app state and the last block from the file system
// It verifies that they match, then rolls back one block and re-runs the given block
// It will output the new hash after running.
//
// If -error is passed, then it will try -max times until a different app hash results
func RetryCmd(makeApp InlineAppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseRetryArgs(args)
	if err != nil {
		return err
	}

	fmt.Println("--> Loading Block")
	blockJSON, err := ioutil.ReadFile(flags.blockPath)
	if err != nil {
		return errors.Wrap(errors.ErrNotFound, err.Error())
	}
	var block *types.Block
	if err := cdc.UnmarshalJSON(blockJSON, &block); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "decode block: %s", err)
	}

	fmt.Println("--> Loading Database")
	tree, ver, err := readTree(flags.dbPath)
	if err != nil {
		return errors.Wrap(err, "error reading abci data")
	}
	if ver != block.Header.Height {
		return errors.Wrapf(errors.ErrInvalidState,
			"height mismatch - block=%d, abcistore=%d", block.Header.Height, ver)
	}

	build := func(kv quorum.CommitKVStore) abci.Application {
		return makeApp(kv, logger, flags.debug)
	}
	return retryBlock(build, tree, block, flags.untilError, flags.maxTries)
}

func readTree(dir string) (*iavl.MutableTree, int64, error) {
	db, err := openDb(dir)
	if err != nil {
		return nil, 0, err
	}
	tree := iavl.NewMutableTree(db, iavlstore.DefaultCacheSize)
	ver, err := tree.Load()
	if err != nil {
		return nil, 0, errors.Wrap(err, "load tree")
	}
	if ver == 0 {
		return nil, 0, errors.Wrap(errors.ErrInvalidState, "iavl tree is empty")
	}
	return tree, ver, nil
}

func retryBlock(build func(quorum.CommitKVStore) abci.Application, tree *iavl.MutableTree, block *types.Block, untilError bool, maxTries int) error {
	fmt.Printf("Original Height: %d\n", block.Header.Height)
	fmt.Printf("Original Hash: %X\n", tree.Hash())

	same, err := rerunBlock(build, tree, block)
	if err != nil {
		return err
	}
	for same && untilError && maxTries > 0 {
		maxTries--
		same, err = rerunBlock(build, tree, block)
		if err != nil {
			return err
		}
	}
	return nil
}

// rerunBlock rolls the tree back by one version, delivers all transactions
// of the block again and reports whether the resulting hash is unchanged.
func rerunBlock(build func(quorum.CommitKVStore) abci.Application, tree *iavl.MutableTree, block *types.Block) (bool, error) {
	origHash := tree.Hash()
	backHeight := block.Header.Height - 1

	fmt.Printf("Rollback to height: %d\n", backHeight)
	if _, err := tree.LoadVersionForOverwriting(backHeight); err != nil {
		return false, errors.Wrapf(err, "rollback to %d", backHeight)
	}

	app := build(iavlstore.NewCommitStoreFromTree(tree))

	fmt.Println("---> Begin Block")
	app.BeginBlock(abci.RequestBeginBlock{Hash: block.Header.Hash(), Header: toAbciHeader(block.Header)})
	for i, tx := range block.Txs {
		res := app.DeliverTx(tx)
		fmt.Printf("---> Deliver Tx %d: code %d %s\n", i, res.Code, res.Log)
	}
	fmt.Println("---> End Block")
	app.EndBlock(abci.RequestEndBlock{Height: block.Header.Height})
	hash := app.Commit().Data
	fmt.Printf("Recomputed Hash: %X\n", hash)

	return bytes.Equal(origHash, hash), nil
}

func toAbciHeader(h types.Header) abci.Header {
	lb := h.LastBlockID
	return abci.Header{
		Version: abci.Version{
			Block: uint64(h.Version.Block),
			App:   uint64(h.Version.App),
		},
		ChainID:  h.ChainID,
		Height:   h.Height,
		Time:     h.Time,
		NumTxs:   h.NumTxs,
		TotalTxs: h.TotalTxs,
		LastBlockId: abci.BlockID{
			Hash: lb.Hash,
			PartsHeader: abci.PartSetHeader{
				Total: int32(lb.PartsHeader.Total),
				Hash:  lb.PartsHeader.Hash,
			},
		},
		LastCommitHash:     h.LastCommitHash,
		DataHash:           h.DataHash,
		ValidatorsHash:     h.ValidatorsHash,
		NextValidatorsHash: h.NextValidatorsHash,
		ConsensusHash:      h.ConsensusHash,
		AppHash:            h.AppHash,
		LastResultsHash:    h.LastResultsHash,
		EvidenceHash:       h.EvidenceHash,
		ProposerAddress:    h.ProposerAddress,
	}
}
