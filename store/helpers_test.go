package store

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceIterator(t *testing.T) {
	data := []Model{
		Pair([]byte("a"), []byte("1")),
		Pair([]byte("b"), []byte("2")),
	}
	it := NewSliceIterator(data)
	assert.True(t, it.Valid())
	assert.Equal(t, []byte("a"), it.Key())
	require.NoError(t, it.Next())
	assert.Equal(t, []byte("2"), it.Value())
	require.NoError(t, it.Next())
	assert.False(t, it.Valid())

	err := it.Next()
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Panics(t, func() { it.Key() })
	it.Close()
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	b := db.NewBatch()
	require.NoError(t, b.Set([]byte("a"), []byte("1")))
	require.NoError(t, b.Set([]byte("b"), []byte("2")))
	require.NoError(t, b.Delete([]byte("a")))

	has, err := db.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has, "batch must not write before Write is called")

	require.NoError(t, b.Write())
	has, err = db.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
	val, err := db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
}
