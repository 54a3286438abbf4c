package validators

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectorateValidate(t *testing.T) {
	addrs := quorumtest.NewAddresses(3)

	cases := map[string]struct {
		e       Electorate
		wantErr *errors.Error
	}{
		"valid": {
			e: Electorate{Members: addrs, Quorum: 2},
		},
		"quorum equal to members": {
			e: Electorate{Members: addrs, Quorum: 3},
		},
		"zero quorum": {
			e:       Electorate{Members: addrs, Quorum: 0},
			wantErr: ErrInvalidQuorum,
		},
		"quorum greater than members": {
			e:       Electorate{Members: addrs, Quorum: 4},
			wantErr: ErrInvalidQuorum,
		},
		"no members": {
			e:       Electorate{Quorum: 1},
			wantErr: ErrInvalidQuorum,
		},
		"duplicated member": {
			e:       Electorate{Members: []quorum.Address{addrs[0], addrs[1], addrs[0]}, Quorum: 1},
			wantErr: ErrDuplicateValidator,
		},
		"invalid address": {
			e:       Electorate{Members: []quorum.Address{addrs[0], []byte("short")}, Quorum: 1},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.e.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}

func TestElectorateSerialization(t *testing.T) {
	e := &Electorate{Members: quorumtest.NewAddresses(3), Quorum: 2}

	raw, err := e.Marshal()
	require.NoError(t, err)

	var got Electorate
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, e.Members, got.Members)
	assert.Equal(t, e.Quorum, got.Quorum)
}

func TestElectorateCopy(t *testing.T) {
	e := &Electorate{Members: quorumtest.NewAddresses(2), Quorum: 1}
	cp := e.Copy().(*Electorate)
	cp.Members[0][0]++
	cp.Quorum = 2
	assert.NotEqual(t, e.Members[0], cp.Members[0])
	assert.EqualValues(t, 1, e.Quorum)
}
