package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/x"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a := quorumtest.NewCondition()
	b := quorumtest.NewCondition()
	c := quorumtest.NewCondition()

	ctx := context.Background()
	ctxAuth := &quorumtest.CtxAuth{Key: "auth"}
	ctx = ctxAuth.SetConditions(ctx, a, b)
	staticAuth := &quorumtest.Auth{Signers: []quorum.Condition{c}}

	cases := map[string]struct {
		auth      x.Authenticator
		wantAddrs []quorum.Address
		wantMain  quorum.Condition
	}{
		"no signers": {
			auth: &quorumtest.Auth{},
		},
		"context signers": {
			auth:      ctxAuth,
			wantAddrs: []quorum.Address{a.Address(), b.Address()},
			wantMain:  a,
		},
		"chained authenticators keep order": {
			auth:      x.ChainAuth(staticAuth, ctxAuth),
			wantAddrs: []quorum.Address{c.Address(), a.Address(), b.Address()},
			wantMain:  c,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addrs := x.GetAddresses(ctx, tc.auth)
			assert.Equal(t, len(tc.wantAddrs), len(addrs))
			for i, want := range tc.wantAddrs {
				assert.True(t, want.Equals(addrs[i]))
				assert.True(t, tc.auth.HasAddress(ctx, want))
			}
			assert.Equal(t, tc.wantMain, x.MainSigner(ctx, tc.auth))
			if tc.wantMain == nil {
				assert.Nil(t, x.MainSignerAddress(ctx, tc.auth))
			} else {
				assert.Equal(t, tc.wantMain.Address(), x.MainSignerAddress(ctx, tc.auth))
			}
		})
	}
}
