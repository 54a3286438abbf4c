/*
Package app links together all the various components
to construct the quorum engine daemon.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/store/iavl"
	"github.com/iov-one/quorum/x"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/utils"
	"github.com/iov-one/quorum/x/validators"
	"github.com/iov-one/quorum/x/vault"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by the daemon. Transactions
// are authenticated by public key signatures, in-process engine calls by
// the caller they declare.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, app.CallerAuth{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to every engine message. Governance
// messages are registered on the same router but can only be reached
// through the execution of an approved self targeted proposal.
func Router(authFn x.Authenticator, targets proposals.Dispatcher) *app.Router {
	r := app.NewRouter()

	ctrl, authority := validators.NewController()
	validators.RegisterRoutes(r, ctrl)

	executor := proposals.NewExecutor(ctrl, authority, r, targets)
	proposals.RegisterRoutes(r, authFn,
		proposals.NewRegistry(ctrl, nil),
		proposals.NewTracker(ctrl),
		executor)

	vault.RegisterRoutes(r, authFn, proposals.EngineAddress)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/validators", "/proposals", "/vault", "/auth"
// and "/"
func QueryRouter() quorum.QueryRouter {
	r := quorum.NewQueryRouter()
	r.RegisterAll(
		validators.RegisterQuery,
		proposals.RegisterQuery,
		vault.RegisterQuery,
		sigs.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp. Calls of executed proposals are
// delivered to targets, which may be nil.
func Stack(targets proposals.Dispatcher) quorum.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, targets))
}

// Initializers returns the genesis loaders of all extensions.
func Initializers() quorum.Initializer {
	return app.ChainInitializers(
		validators.Initializer{},
		proposals.Initializer{},
		vault.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h quorum.Handler, tx quorum.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	return baseApp(name, kv, h, tx, debug), nil
}

func baseApp(name string, kv quorum.CommitKVStore, h quorum.Handler, tx quorum.TxDecoder, debug bool) app.BaseApp {
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	return app.NewBaseApp(store, tx, h, debug)
}

// InlineApp builds the daemon application on top of an opened store. It is
// used to replay blocks.
func InlineApp(kv quorum.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	application := baseApp("quorum", kv, Stack(nil), TxDecoder, debug)
	application.WithInit(Initializers())
	application.WithLogger(logger)
	return application
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path returns a memory store.
func CommitKVStore(dbPath string) (quorum.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

// NewEngine returns an in-process engine with the message handlers of the
// daemon, without the transaction decorators. Callers are authenticated by
// the condition passed to each call.
func NewEngine(db quorum.CacheableKVStore, targets proposals.Dispatcher) *app.Engine {
	h := app.ChainDecorators(utils.NewRecovery()).
		WithHandler(Router(app.CallerAuth{}, targets))
	return app.NewEngine(db, h)
}
