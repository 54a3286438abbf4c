package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/proposals"
	"github.com/iov-one/quorum/x/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTarget records every call it receives and fails with err.
type recordingTarget struct {
	calls []proposals.Call
	err   error
}

func (r *recordingTarget) Call(ctx quorum.Context, db quorum.KVStore, call proposals.Call) error {
	r.calls = append(r.calls, call)
	if err := db.Set([]byte("target:last"), call.Payload); err != nil {
		return err
	}
	return r.err
}

// genesisOptions returns the options of an engine governed by conds.
func genesisOptions(t testing.TB, threshold uint32, conds []quorum.Condition, valuePolicy string) quorum.Options {
	t.Helper()

	members := make([]quorum.Address, len(conds))
	for i, c := range conds {
		members[i] = c.Address()
	}
	conf := proposals.DefaultConfiguration()
	if valuePolicy != "" {
		conf.ValuePolicy = valuePolicy
	}
	rawConf, err := json.Marshal(&conf)
	require.NoError(t, err)

	raw, err := json.Marshal(genesis{
		Validators: validators.Genesis{Quorum: threshold, Members: members},
		Conf:       map[string]json.RawMessage{"proposals": rawConf},
	})
	require.NoError(t, err)

	var opts quorum.Options
	require.NoError(t, json.Unmarshal(raw, &opts))
	return opts
}

func newTestEngine(t testing.TB, threshold uint32, conds []quorum.Condition, targets proposals.Dispatcher) *app.Engine {
	t.Helper()

	e := NewEngine(store.MemStore(), targets)
	require.NoError(t, e.InitGenesis(genesisOptions(t, threshold, conds, ""), Initializers()))
	return e
}

func newConditions(n int) []quorum.Condition {
	conds := make([]quorum.Condition, n)
	for i := range conds {
		conds[i] = quorumtest.NewCondition()
	}
	return conds
}

func TestEngineGenesisValidation(t *testing.T) {
	a, b := quorumtest.NewCondition(), quorumtest.NewCondition()

	cases := map[string]struct {
		threshold uint32
		conds     []quorum.Condition
		wantErr   *errors.Error
	}{
		"valid": {
			threshold: 2,
			conds:     []quorum.Condition{a, b},
		},
		"quorum above validator count": {
			threshold: 3,
			conds:     []quorum.Condition{a, b},
			wantErr:   validators.ErrInvalidQuorum,
		},
		"zero quorum": {
			threshold: 0,
			conds:     []quorum.Condition{a, b},
			wantErr:   validators.ErrInvalidQuorum,
		},
		"repeated validator": {
			threshold: 1,
			conds:     []quorum.Condition{a, b, a},
			wantErr:   validators.ErrDuplicateValidator,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := NewEngine(store.MemStore(), nil)
			err := e.InitGenesis(genesisOptions(t, tc.threshold, tc.conds, ""), Initializers())
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				_, err := e.Validators()
				assert.True(t, errors.ErrNotFound.Is(err), "nothing must be stored, got %+v", err)
				return
			}
			require.NoError(t, err)
			q, err := e.Quorum()
			require.NoError(t, err)
			assert.EqualValues(t, tc.threshold, q)
		})
	}
}

func TestEngineExternalScenario(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(3)
	a, b, c := conds[0], conds[1], conds[2]

	targets := proposals.NewTargetRouter()
	external := quorumtest.NewAddress()
	rec := &recordingTarget{}
	targets.Register(external, rec)
	e := newTestEngine(t, 2, conds, targets)

	id, err := e.Propose(ctx, a, external, []byte("X"))
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, b, id))

	_, err = e.Execute(ctx, a, id)
	assert.True(t, proposals.ErrQuorumNotMet.Is(err), "got %+v", err)
	assert.Empty(t, rec.calls)

	require.NoError(t, e.Approve(ctx, c, id))
	n, err := e.ApprovalCount(id)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	res, err := e.Execute(ctx, a, id)
	require.NoError(t, err)
	assert.Equal(t, id, res.Data)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []byte("X"), rec.calls[0].Payload)

	p, err := e.Proposal(id)
	require.NoError(t, err)
	assert.True(t, p.Executed)

	_, err = e.Execute(ctx, a, id)
	assert.True(t, proposals.ErrAlreadyExecuted.Is(err), "got %+v", err)
	assert.Len(t, rec.calls, 1)
}

func TestEngineSelfGovernanceScenario(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(3)
	a, b, c := conds[0], conds[1], conds[2]
	e := newTestEngine(t, 2, conds, nil)
	engine := proposals.EngineCondition.Address()

	removeC, err := validators.EncodeInstruction(&validators.RemoveValidatorMsg{Validator: c.Address()})
	require.NoError(t, err)
	id, err := e.Propose(ctx, a, engine, removeC)
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, a, id))
	require.NoError(t, e.Approve(ctx, b, id))
	_, err = e.Execute(ctx, c, id)
	require.NoError(t, err)

	members, err := e.Validators()
	require.NoError(t, err)
	assert.Equal(t, []quorum.Address{a.Address(), b.Address()}, members)
	q, err := e.Quorum()
	require.NoError(t, err)
	assert.EqualValues(t, 2, q)

	// C is no longer allowed to act.
	_, err = e.Propose(ctx, c, engine, []byte("anything"))
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	removeB, err := validators.EncodeInstruction(&validators.RemoveValidatorMsg{Validator: b.Address()})
	require.NoError(t, err)
	id2, err := e.Propose(ctx, a, engine, removeB)
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, a, id2))
	require.NoError(t, e.Approve(ctx, b, id2))
	_, err = e.Execute(ctx, a, id2)
	assert.True(t, validators.ErrInvalidQuorum.Is(err), "got %+v", err)

	members, err = e.Validators()
	require.NoError(t, err)
	assert.Equal(t, []quorum.Address{a.Address(), b.Address()}, members)
	p, err := e.Proposal(id2)
	require.NoError(t, err)
	assert.False(t, p.Executed, "failed execution must not be recorded")

	// Lowering the quorum first makes the removal possible.
	lower, err := validators.EncodeInstruction(&validators.ChangeQuorumMsg{Quorum: 1})
	require.NoError(t, err)
	id3, err := e.Propose(ctx, b, engine, lower)
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, a, id3))
	require.NoError(t, e.Approve(ctx, b, id3))
	_, err = e.Execute(ctx, nil, id3)
	require.NoError(t, err)

	_, err = e.Execute(ctx, a, id2)
	require.NoError(t, err)
	members, err = e.Validators()
	require.NoError(t, err)
	assert.Equal(t, []quorum.Address{a.Address()}, members)
}

func TestEngineGovernanceRequiresExecution(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(2)
	e := newTestEngine(t, 1, conds, nil)

	msgs := []quorum.Msg{
		&validators.AddValidatorMsg{Validator: quorumtest.NewAddress()},
		&validators.RemoveValidatorMsg{Validator: conds[1].Address()},
		&validators.ChangeQuorumMsg{Quorum: 2},
	}
	for _, msg := range msgs {
		_, err := e.Deliver(ctx, conds[0], msg)
		assert.True(t, errors.ErrUnauthorized.Is(err), "%s: got %+v", msg.Path(), err)
	}

	members, err := e.Validators()
	require.NoError(t, err)
	assert.Len(t, members, 2)
	q, err := e.Quorum()
	require.NoError(t, err)
	assert.EqualValues(t, 1, q)
}

func TestEngineApprovalLifecycle(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(3)
	a, b := conds[0], conds[1]
	outsider := quorumtest.NewCondition()
	e := newTestEngine(t, 2, conds, nil)
	target := quorumtest.NewAddress()

	_, err := e.Propose(ctx, outsider, target, nil)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	id, err := e.Propose(ctx, a, target, []byte("payload"))
	require.NoError(t, err)
	_, err = e.Propose(ctx, a, target, []byte("payload"))
	assert.True(t, proposals.ErrProposalExists.Is(err), "got %+v", err)

	err = e.Approve(ctx, outsider, id)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)
	err = e.Revoke(ctx, outsider, id)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	// missing caller and invalid messages from outsiders fail the same way
	err = e.Approve(ctx, nil, id)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)
	_, err = e.Propose(ctx, nil, target, nil)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)
	_, err = e.Propose(ctx, outsider, nil, nil)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	err = e.Revoke(ctx, b, id)
	assert.True(t, proposals.ErrNotApproved.Is(err), "got %+v", err)

	require.NoError(t, e.Approve(ctx, b, id))
	err = e.Approve(ctx, b, id)
	assert.True(t, proposals.ErrAlreadyApproved.Is(err), "got %+v", err)
	require.NoError(t, e.Revoke(ctx, b, id))
	require.NoError(t, e.Approve(ctx, b, id))

	n, err := e.ApprovalCount(id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = e.Execute(ctx, nil, id)
	assert.True(t, proposals.ErrQuorumNotMet.Is(err), "got %+v", err)

	err = e.Approve(ctx, a, []byte("unknown"))
	assert.True(t, proposals.ErrProposalNotFound.Is(err), "got %+v", err)
}

func TestEngineIdenticalProposalsByDistinctProposers(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(2)
	a, b := conds[0], conds[1]

	targets := proposals.NewTargetRouter()
	external := quorumtest.NewAddress()
	rec := &recordingTarget{}
	targets.Register(external, rec)
	e := newTestEngine(t, 1, conds, targets)

	idA, err := e.Propose(ctx, a, external, []byte("P"))
	require.NoError(t, err)
	idB, err := e.Propose(ctx, b, external, []byte("P"))
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	require.NoError(t, e.Approve(ctx, a, idA))
	_, err = e.Execute(ctx, a, idA)
	require.NoError(t, err)

	pB, err := e.Proposal(idB)
	require.NoError(t, err)
	assert.False(t, pB.Executed)

	require.NoError(t, e.Approve(ctx, b, idB))
	_, err = e.Execute(ctx, b, idB)
	require.NoError(t, err)
	assert.Len(t, rec.calls, 2)
}

func TestEngineFailingTargetRollsBack(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(1)

	targets := proposals.NewTargetRouter()
	external := quorumtest.NewAddress()
	rec := &recordingTarget{err: errors.Wrap(errors.ErrHuman, "target failure")}
	targets.Register(external, rec)
	db := store.MemStore()
	e := NewEngine(db, targets)
	require.NoError(t, e.InitGenesis(genesisOptions(t, 1, conds, ""), Initializers()))

	id, err := e.Propose(ctx, conds[0], external, []byte("write me"))
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, conds[0], id))

	_, err = e.Execute(ctx, conds[0], id)
	assert.True(t, proposals.ErrExternalCallFailed.Is(err), "got %+v", err)
	assert.Len(t, rec.calls, 1)

	p, err := e.Proposal(id)
	require.NoError(t, err)
	assert.False(t, p.Executed)
	val, err := db.Get([]byte("target:last"))
	require.NoError(t, err)
	assert.Nil(t, val, "target writes must be rolled back")

	// The proposal can be executed once the target recovers.
	rec.err = nil
	_, err = e.Execute(ctx, conds[0], id)
	require.NoError(t, err)
	assert.Len(t, rec.calls, 2)
}

func TestEngineForwardsValue(t *testing.T) {
	ctx := context.Background()
	conds := newConditions(1)

	targets := proposals.NewTargetRouter()
	external := quorumtest.NewAddress()
	rec := &recordingTarget{}
	targets.Register(external, rec)
	e := NewEngine(store.MemStore(), targets)
	require.NoError(t, e.InitGenesis(genesisOptions(t, 1, conds, proposals.ValuePolicyAll), Initializers()))

	require.NoError(t, e.Deposit(ctx, conds[0], 100))
	err := e.Deposit(ctx, conds[0], 0)
	assert.True(t, errors.ErrInvalidAmount.Is(err), "got %+v", err)
	engine := proposals.EngineCondition.Address()
	balance, err := e.Balance(engine)
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)

	id, err := e.Propose(ctx, conds[0], external, nil)
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, conds[0], id))
	_, err = e.Execute(ctx, conds[0], id)
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.EqualValues(t, 100, rec.calls[0].Value)
	balance, err = e.Balance(engine)
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
	balance, err = e.Balance(external)
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)
}

func TestEngineDepositRequiresCaller(t *testing.T) {
	e := newTestEngine(t, 1, newConditions(1), nil)
	err := e.Deposit(context.Background(), nil, 10)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)

	balance, err := e.Balance(proposals.EngineCondition.Address())
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
}
