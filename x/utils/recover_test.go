package utils

import (
	"context"
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := quorumtest.Decorate(quorumtest.PanicHandler{Msg: "boom"}, NewRecovery())
	db := store.MemStore()
	ctx := context.Background()

	_, err := h.Check(ctx, db, &quorumtest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)

	_, err = h.Deliver(ctx, db, &quorumtest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)
}

func TestLoggingPassesResults(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()

	h := &quorumtest.Handler{DeliverErr: errors.ErrUnauthorized}
	d := quorumtest.Decorate(h, NewLogging())

	_, err := d.Check(ctx, db, &quorumtest.Tx{})
	assert.NoError(t, err)
	_, err = d.Deliver(ctx, db, &quorumtest.Tx{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 2, h.CallCount())
}
