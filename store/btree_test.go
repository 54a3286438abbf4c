package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memSuite() *TestSuite {
	return NewTestSuite(func() (CacheableKVStore, func()) {
		return MemStore(), func() {}
	})
}

func TestBTreeCacheGetSet(t *testing.T) {
	memSuite().GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	memSuite().CacheConflicts(t)
}

func TestBTreeFuzzIterator(t *testing.T) {
	memSuite().FuzzIterator(t)
}

func TestBTreeIteratorWithConflicts(t *testing.T) {
	memSuite().IteratorWithConflicts(t)
}

func TestBTreeNestedSavepoints(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("quorum"), []byte{2}))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("quorum"), []byte{3}))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Delete([]byte("quorum")))
	require.NoError(t, inner.Set([]byte("member"), []byte{1}))
	// a failed nested call leaves the outer changes in place
	inner.Discard()

	got, err := outer.Get([]byte("quorum"))
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, got)
	has, err := outer.Has([]byte("member"))
	require.NoError(t, err)
	assert.False(t, has)

	// nothing reaches the base before the outer wrap is written
	got, err = base.Get([]byte("quorum"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, got)

	require.NoError(t, outer.Write())
	got, err = base.Get([]byte("quorum"))
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, got)
}

func TestBTreeDiscardDropsBatch(t *testing.T) {
	base := MemStore()
	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("b")))
	cache.Discard()
	// writing a discarded wrap must not resurrect its changes
	require.NoError(t, cache.Write())

	has, err := base.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}
