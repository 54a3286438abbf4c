package proposals

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/validators"
	"github.com/stretchr/testify/require"
)

// router is a minimal path router used to deliver governance instructions.
type router map[string]quorum.Handler

func (r router) Handle(path string, h quorum.Handler) {
	r[path] = h
}

func (r router) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	h, ok := r[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "path %q", msg.Path())
	}
	return h.Deliver(ctx, db, tx)
}

type fixture struct {
	ctx        quorum.Context
	db         store.CacheableKVStore
	validators []quorum.Address
	ctrl       *validators.Controller
	registry   *Registry
	tracker    *Tracker
	executor   *Executor
	targets    *TargetRouter
	engine     quorum.Address
}

// newFixture returns an initialized engine with n validators and given
// quorum.
func newFixture(t testing.TB, n int, threshold uint32) *fixture {
	t.Helper()
	return newFixtureAt(t, quorumtest.NewAddresses(n), threshold)
}

// newFixtureWith returns an initialized engine whose validators are the
// addresses of given conditions.
func newFixtureWith(t testing.TB, conds []quorum.Condition, threshold uint32) *fixture {
	t.Helper()

	addrs := make([]quorum.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return newFixtureAt(t, addrs, threshold)
}

func newFixtureAt(t testing.TB, addrs []quorum.Address, threshold uint32) *fixture {
	t.Helper()

	db := store.MemStore()
	ctrl, authority := validators.NewController()
	require.NoError(t, ctrl.Initialize(db, threshold, addrs))

	gov := make(router)
	validators.RegisterRoutes(gov, ctrl)
	targets := NewTargetRouter()

	return &fixture{
		ctx:        context.Background(),
		db:         db,
		validators: addrs,
		ctrl:       ctrl,
		registry:   NewRegistry(ctrl, nil),
		tracker:    NewTracker(ctrl),
		executor:   NewExecutor(ctrl, authority, gov, targets),
		targets:    targets,
		engine:     EngineCondition.Address(),
	}
}

// proposeApproved creates a proposal by the first validator and approves
// it by the given validators.
func (f *fixture) proposeApproved(t testing.TB, target quorum.Address, payload []byte, approvers ...quorum.Address) []byte {
	t.Helper()

	id, err := f.registry.Propose(f.ctx, f.db, f.validators[0], target, payload)
	require.NoError(t, err)
	for _, a := range approvers {
		require.NoError(t, f.tracker.Approve(f.ctx, f.db, a, id))
	}
	return id
}

// instruction returns the payload of a governance message.
func instruction(t testing.TB, msg quorum.Msg) []byte {
	t.Helper()

	payload, err := validators.EncodeInstruction(msg)
	require.NoError(t, err)
	return payload
}
