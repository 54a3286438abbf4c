package proposals

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/x/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropose(t *testing.T) {
	f := newFixture(t, 3, 2)
	target := quorumtest.NewAddress()
	payload := []byte("payload")

	ctx := quorum.WithHeight(f.ctx, 42)
	id, err := f.registry.Propose(ctx, f.db, f.validators[0], target, payload)
	require.NoError(t, err)
	assert.Equal(t, Keccak256ID(f.validators[0], target, payload), id)

	p, err := f.registry.Get(f.db, id)
	require.NoError(t, err)
	assert.Equal(t, f.validators[0], p.Proposer)
	assert.Equal(t, target, p.Target)
	assert.Equal(t, payload, p.Payload)
	assert.Empty(t, p.Approvers, "proposer must not approve implicitly")
	assert.False(t, p.Executed)
	assert.EqualValues(t, 42, p.CreatedHeight)

	_, err = f.registry.Propose(ctx, f.db, f.validators[0], target, payload)
	assert.True(t, ErrProposalExists.Is(err), "got %+v", err)

	other, err := f.registry.Propose(ctx, f.db, f.validators[1], target, payload)
	require.NoError(t, err, "a different proposer creates a distinct proposal")
	assert.NotEqual(t, id, other)

	_, err = f.registry.Propose(ctx, f.db, quorumtest.NewAddress(), target, payload)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	_, err = f.registry.Propose(ctx, f.db, f.validators[0], nil, payload)
	assert.True(t, errors.ErrInvalidInput.Is(err), "got %+v", err)
}

func TestGetMissingProposal(t *testing.T) {
	f := newFixture(t, 1, 1)
	_, err := f.registry.Get(f.db, []byte("missing"))
	assert.True(t, ErrProposalNotFound.Is(err))
}

func TestCustomIDFunc(t *testing.T) {
	f := newFixture(t, 1, 1)
	registry := NewRegistry(f.ctrl, SHA256ID)
	target := quorumtest.NewAddress()

	id, err := registry.Propose(f.ctx, f.db, f.validators[0], target, nil)
	require.NoError(t, err)
	assert.Equal(t, SHA256ID(f.validators[0], target, nil), id)
}
