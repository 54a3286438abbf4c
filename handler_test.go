package quorum

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	type conf struct {
		Quorum  uint32   `json:"quorum"`
		Members []string `json:"members"`
	}

	cases := map[string]struct {
		json    string
		key     string
		want    conf
		wantErr *errors.Error
	}{
		"happy path": {
			json: `{"validators": {"quorum": 2, "members": ["a", "b"]}}`,
			key:  "validators",
			want: conf{Quorum: 2, Members: []string{"a", "b"}},
		},
		"missing key is a noop": {
			json: `{"other": {"quorum": 2}}`,
			key:  "validators",
			want: conf{},
		},
		"wrong value": {
			json:    `{"validators": {"quorum": "two"}}`,
			key:     "validators",
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var o Options
			require.NoError(t, json.Unmarshal([]byte(tc.json), &o))
			var got conf
			err := o.ReadOptions(tc.key, &got)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
