package validators

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

type routes map[string]quorum.Handler

func (r routes) Handle(path string, h quorum.Handler) {
	r[path] = h
}

func TestGovernanceHandlers(t *testing.T) {
	addrs := quorumtest.NewAddresses(3)
	newcomer := quorumtest.NewAddress()

	cases := map[string]struct {
		msg         quorum.Msg
		capability  bool
		wantErr     *errors.Error
		wantMembers []quorum.Address
		wantQuorum  uint32
	}{
		"change quorum without capability": {
			msg:         &ChangeQuorumMsg{Quorum: 3},
			wantErr:     errors.ErrUnauthorized,
			wantMembers: addrs,
			wantQuorum:  2,
		},
		"add validator without capability": {
			msg:         &AddValidatorMsg{Validator: newcomer},
			wantErr:     errors.ErrUnauthorized,
			wantMembers: addrs,
			wantQuorum:  2,
		},
		"remove validator without capability": {
			msg:         &RemoveValidatorMsg{Validator: addrs[0]},
			wantErr:     errors.ErrUnauthorized,
			wantMembers: addrs,
			wantQuorum:  2,
		},
		"change quorum": {
			msg:         &ChangeQuorumMsg{Quorum: 3},
			capability:  true,
			wantMembers: addrs,
			wantQuorum:  3,
		},
		"add validator": {
			msg:         &AddValidatorMsg{Validator: newcomer},
			capability:  true,
			wantMembers: append(append([]quorum.Address(nil), addrs...), newcomer),
			wantQuorum:  2,
		},
		"remove validator": {
			msg:         &RemoveValidatorMsg{Validator: addrs[2]},
			capability:  true,
			wantMembers: addrs[:2],
			wantQuorum:  2,
		},
		"change quorum above size": {
			msg:         &ChangeQuorumMsg{Quorum: 4},
			capability:  true,
			wantErr:     ErrInvalidQuorum,
			wantMembers: addrs,
			wantQuorum:  2,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl, auth := NewController()
			require.NoError(t, ctrl.Initialize(db, 2, addrs))

			r := make(routes)
			RegisterRoutes(r, ctrl)
			h, ok := r[tc.msg.Path()]
			require.True(t, ok)

			ctx := context.Background()
			if tc.capability {
				var release func()
				ctx, release = auth.Grant(ctx, []byte("proposal"), nil, nil)
				defer release()
			}
			tx := &quorumtest.Tx{Msg: tc.msg}

			if _, err := h.Check(ctx, db, tx); tc.wantErr == errors.ErrUnauthorized {
				assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)
			} else {
				assert.NoError(t, err)
			}

			res, err := h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %+v", err)
			} else {
				require.NoError(t, err)
				require.Len(t, res.Tags, 2)
				assert.Equal(t, []byte("proposal"), res.Tags[0].Value)
			}

			e, err := ctrl.Electorate(db)
			require.NoError(t, err)
			assert.Equal(t, tc.wantMembers, e.Members)
			assert.Equal(t, tc.wantQuorum, e.Quorum)
		})
	}
}

func TestUnauthorizedMessage(t *testing.T) {
	db := store.MemStore()
	ctrl, _ := NewController()
	require.NoError(t, ctrl.Initialize(db, 1, quorumtest.NewAddresses(1)))

	h := &ChangeQuorumHandler{ctrl: ctrl}
	_, err := h.Deliver(context.Background(), db, &quorumtest.Tx{Msg: &ChangeQuorumMsg{Quorum: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can only be accessed by approving transactions")
}
