package validators

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerInitialize(t *testing.T) {
	addrs := quorumtest.NewAddresses(3)

	cases := map[string]struct {
		quorum  uint32
		members []quorum.Address
		wantErr *errors.Error
	}{
		"two of three": {
			quorum:  2,
			members: addrs,
		},
		"zero quorum": {
			quorum:  0,
			members: addrs,
			wantErr: ErrInvalidQuorum,
		},
		"quorum above members": {
			quorum:  4,
			members: addrs,
			wantErr: ErrInvalidQuorum,
		},
		"duplicated validator": {
			quorum:  1,
			members: []quorum.Address{addrs[0], addrs[0]},
			wantErr: ErrDuplicateValidator,
		},
		"invalid identity": {
			quorum:  1,
			members: []quorum.Address{addrs[0], nil},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl, _ := NewController()
			err := ctrl.Initialize(db, tc.quorum, tc.members)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %+v", err)
				_, err := ctrl.Electorate(db)
				assert.True(t, errors.ErrNotFound.Is(err))
				return
			}
			require.NoError(t, err)

			size, err := ctrl.Size(db)
			require.NoError(t, err)
			assert.Equal(t, len(tc.members), size)
			q, err := ctrl.Quorum(db)
			require.NoError(t, err)
			assert.Equal(t, tc.quorum, q)
			members, err := ctrl.Members(db)
			require.NoError(t, err)
			assert.Equal(t, tc.members, members)

			err = ctrl.Initialize(db, tc.quorum, tc.members)
			assert.True(t, errors.ErrDuplicate.Is(err))
		})
	}
}

func TestValidatorSet(t *testing.T) {
	Convey("Given an electorate of three validators with quorum two", t, func() {
		db := store.MemStore()
		ctrl, auth := NewController()
		addrs := quorumtest.NewAddresses(3)
		So(ctrl.Initialize(db, 2, addrs), ShouldBeNil)

		ctx, release := auth.Grant(context.Background(), []byte("proposal"), quorumtest.NewAddress(), nil)
		defer release()
		capability := CapabilityFromContext(ctx)
		So(capability, ShouldNotBeNil)

		Convey("membership is reported for every validator", func() {
			for _, a := range addrs {
				ok, err := ctrl.Contains(db, a)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			}
			ok, err := ctrl.Contains(db, quorumtest.NewAddress())
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("adding a new validator appends it", func() {
			newcomer := quorumtest.NewAddress()
			So(ctrl.Add(db, capability, newcomer), ShouldBeNil)

			members, err := ctrl.Members(db)
			So(err, ShouldBeNil)
			So(len(members), ShouldEqual, 4)
			So(members[3], ShouldResemble, newcomer)
		})

		Convey("adding an existing validator fails", func() {
			err := ctrl.Add(db, capability, addrs[1])
			So(ErrDuplicateValidator.Is(err), ShouldBeTrue)
		})

		Convey("removing a validator keeps the order of the others", func() {
			So(ctrl.Remove(db, capability, addrs[0]), ShouldBeNil)

			members, err := ctrl.Members(db)
			So(err, ShouldBeNil)
			So(members, ShouldResemble, []quorum.Address{addrs[1], addrs[2]})

			Convey("and removing below the quorum fails without changes", func() {
				err := ctrl.Remove(db, capability, addrs[1])
				So(ErrInvalidQuorum.Is(err), ShouldBeTrue)

				size, err := ctrl.Size(db)
				So(err, ShouldBeNil)
				So(size, ShouldEqual, 2)
			})
		})

		Convey("removing an unknown validator fails", func() {
			err := ctrl.Remove(db, capability, quorumtest.NewAddress())
			So(ErrUnknownValidator.Is(err), ShouldBeTrue)
		})

		Convey("quorum can be changed within bounds", func() {
			So(ctrl.ChangeQuorum(db, capability, 3), ShouldBeNil)
			q, err := ctrl.Quorum(db)
			So(err, ShouldBeNil)
			So(q, ShouldEqual, 3)

			So(ErrInvalidQuorum.Is(ctrl.ChangeQuorum(db, capability, 0)), ShouldBeTrue)
			So(ErrInvalidQuorum.Is(ctrl.ChangeQuorum(db, capability, 4)), ShouldBeTrue)

			q, err = ctrl.Quorum(db)
			So(err, ShouldBeNil)
			So(q, ShouldEqual, 3)
		})

		Convey("mutations without a capability are rejected", func() {
			So(errors.ErrUnauthorized.Is(ctrl.Add(db, nil, quorumtest.NewAddress())), ShouldBeTrue)
			So(errors.ErrUnauthorized.Is(ctrl.Remove(db, nil, addrs[0])), ShouldBeTrue)
			So(errors.ErrUnauthorized.Is(ctrl.ChangeQuorum(db, nil, 1)), ShouldBeTrue)

			Convey("as are forged ones", func() {
				forged := &Capability{proposalID: []byte("proposal")}
				So(errors.ErrUnauthorized.Is(ctrl.ChangeQuorum(db, forged, 1)), ShouldBeTrue)
			})

			Convey("as are ones minted by another authority", func() {
				_, other := NewController()
				octx, orelease := other.Grant(context.Background(), []byte("proposal"), nil, nil)
				defer orelease()
				err := ctrl.ChangeQuorum(db, CapabilityFromContext(octx), 1)
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			})
		})
	})
}

func TestCapabilityRelease(t *testing.T) {
	db := store.MemStore()
	ctrl, auth := NewController()
	require.NoError(t, ctrl.Initialize(db, 1, quorumtest.NewAddresses(2)))

	ctx, release := auth.Grant(context.Background(), []byte("id"), nil, []byte("payload"))
	capability := CapabilityFromContext(ctx)
	assert.Equal(t, []byte("id"), capability.ProposalID())
	assert.Equal(t, []byte("payload"), capability.Payload())
	require.NoError(t, ctrl.ChangeQuorum(db, capability, 2))

	release()
	err := ctrl.ChangeQuorum(db, capability, 1)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}
