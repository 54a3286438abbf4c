package utils

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

func TestSavepoint(t *testing.T) {
	// ok is always written before the call
	ok, ov := []byte("demo"), []byte("data")
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save        Savepoint
		handlerErr  error
		check       bool
		wantWritten [][]byte
		wantMissing [][]byte
	}{
		"savepoint disabled, error keeps writes": {
			save:        NewSavepoint(),
			handlerErr:  errors.ErrHuman,
			check:       true,
			wantWritten: [][]byte{ok, nk},
		},
		"check savepoint, error discards writes": {
			save:        NewSavepoint().OnCheck(),
			handlerErr:  errors.ErrHuman,
			check:       true,
			wantWritten: [][]byte{ok},
			wantMissing: [][]byte{nk},
		},
		"deliver savepoint, error discards writes": {
			save:        NewSavepoint().OnDeliver(),
			handlerErr:  errors.ErrHuman,
			wantWritten: [][]byte{ok},
			wantMissing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:        NewSavepoint().OnCheck(),
			handlerErr:  errors.ErrHuman,
			wantWritten: [][]byte{ok, nk},
		},
		"both savepoints, success keeps writes": {
			save:        NewSavepoint().OnCheck().OnDeliver(),
			wantWritten: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			require.NoError(t, db.Set(ok, ov))

			h := quorumtest.Decorate(&quorumtest.WriteHandler{Key: nk, Value: nv, Err: tc.handlerErr}, tc.save)

			var err error
			if tc.check {
				_, err = h.Check(context.Background(), db, &quorumtest.Tx{})
			} else {
				_, err = h.Deliver(context.Background(), db, &quorumtest.Tx{})
			}
			if tc.handlerErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			for _, k := range tc.wantWritten {
				has, err := db.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%X", k)
			}
			for _, k := range tc.wantMissing {
				has, err := db.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%X", k)
			}
		})
	}
}

func TestAtomic(t *testing.T) {
	db := store.MemStore()

	err := Atomic(db, func(kv quorum.KVStore) error {
		require.NoError(t, kv.Set([]byte("a"), []byte("1")))
		return errors.ErrInvalidState
	})
	assert.True(t, errors.ErrInvalidState.Is(err))
	v, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, v)

	err = Atomic(db, func(kv quorum.KVStore) error {
		return kv.Set([]byte("a"), []byte("2"))
	})
	require.NoError(t, err)
	v, err = db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}
