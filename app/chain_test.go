package app

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	var (
		ctx = context.Background()
		db  = store.MemStore()
		tx  = &quorumtest.Tx{Msg: &quorumtest.Msg{RoutePath: "test/chain"}}
	)

	first := &quorumtest.Decorator{}
	second := &quorumtest.Decorator{}
	var missing *quorumtest.Decorator
	h := &quorumtest.Handler{}

	stack := ChainDecorators(first, nil, missing).Chain(second).WithHandler(h)

	_, err := stack.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.CallCount())
	assert.Equal(t, 2, second.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a failing decorator stops the chain
	second.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 3, first.CallCount())
	assert.Equal(t, 3, second.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestCutoffNil(t *testing.T) {
	var missing *quorumtest.Decorator
	d := &quorumtest.Decorator{}
	ds := cutoffNil([]quorum.Decorator{nil, d, missing, d, nil})
	assert.Equal(t, []quorum.Decorator{d, d}, ds)
}
