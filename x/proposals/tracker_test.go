package proposals

import (
	"testing"

	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/x/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveRevoke(t *testing.T) {
	f := newFixture(t, 3, 2)
	a, b := f.validators[0], f.validators[1]
	id := f.proposeApproved(t, quorumtest.NewAddress(), []byte("x"))

	count := func() int {
		n, err := f.tracker.ApprovalCount(f.db, id)
		require.NoError(t, err)
		return n
	}

	require.NoError(t, f.tracker.Approve(f.ctx, f.db, a, id))
	assert.Equal(t, 1, count())

	err := f.tracker.Approve(f.ctx, f.db, a, id)
	assert.True(t, ErrAlreadyApproved.Is(err), "got %+v", err)
	assert.Equal(t, 1, count())

	err = f.tracker.Revoke(f.ctx, f.db, b, id)
	assert.True(t, ErrNotApproved.Is(err), "got %+v", err)

	require.NoError(t, f.tracker.Revoke(f.ctx, f.db, a, id))
	assert.Equal(t, 0, count())

	require.NoError(t, f.tracker.Approve(f.ctx, f.db, a, id), "approval after revocation")
	require.NoError(t, f.tracker.Approve(f.ctx, f.db, b, id))
	assert.Equal(t, 2, count())

	p, err := f.registry.Get(f.db, id)
	require.NoError(t, err)
	assert.Equal(t, []byte(a), []byte(p.Approvers[0]))
	assert.Equal(t, []byte(b), []byte(p.Approvers[1]))
}

func TestTrackerErrors(t *testing.T) {
	f := newFixture(t, 2, 1)
	id := f.proposeApproved(t, quorumtest.NewAddress(), nil)
	stranger := quorumtest.NewAddress()

	err := f.tracker.Approve(f.ctx, f.db, stranger, id)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)
	err = f.tracker.Revoke(f.ctx, f.db, stranger, id)
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	// membership is checked before the proposal existence
	err = f.tracker.Approve(f.ctx, f.db, stranger, []byte("missing"))
	assert.True(t, validators.ErrNotAValidator.Is(err), "got %+v", err)

	err = f.tracker.Approve(f.ctx, f.db, f.validators[0], []byte("missing"))
	assert.True(t, ErrProposalNotFound.Is(err), "got %+v", err)
	err = f.tracker.Revoke(f.ctx, f.db, f.validators[0], []byte("missing"))
	assert.True(t, ErrProposalNotFound.Is(err), "got %+v", err)
	_, err = f.tracker.ApprovalCount(f.db, []byte("missing"))
	assert.True(t, ErrProposalNotFound.Is(err), "got %+v", err)
}
