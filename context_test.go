package quorum

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	// test height - uninitialized
	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	// set
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	// chain id MUST be set
	assert.Panics(t, func() { GetChainID(ctx) })
	id := "my-chain"
	ctx = WithChainID(ctx, id)
	assert.Equal(t, id, GetChainID(ctx))
	// no reset
	assert.Panics(t, func() { WithChainID(ctx, "other-chain") })
}

func TestChainID(t *testing.T) {
	cases := map[string]bool{
		"":                              false,
		"foo":                           false,
		"special":                       true,
		"wish-YOU-88":                   true,
		"invalid;;chars":                false,
		"this-chain-id-is-way-too-long": false,
	}
	for chainID, valid := range cases {
		assert.Equal(t, valid, IsValidChainID(chainID), chainID)
	}
}

func TestBlockTime(t *testing.T) {
	ctx := context.Background()
	_, ok := BlockTime(ctx)
	assert.False(t, ok)

	now := time.Now().UTC()
	ctx = WithHeader(ctx, abci.Header{Time: now, Height: 3})
	got, ok := BlockTime(ctx)
	assert.True(t, ok)
	assert.Equal(t, now, got)
	assert.Panics(t, func() { WithHeader(ctx, abci.Header{}) })
}

func TestWithLogInfo(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), log.NewTMLogger(&buf))
	ctx = WithLogInfo(ctx, "mod", "proposals")

	GetLogger(ctx).Info("executed")
	assert.Contains(t, buf.String(), "mod=proposals")
	assert.Contains(t, buf.String(), "executed")

	// without a logger the default one is extended
	ctx = WithLogInfo(context.Background(), "mod", "proposals")
	assert.NotNil(t, GetLogger(ctx))
}
