package quorumtest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/iov-one/quorum"
)

var condCounter uint64

// NewCondition returns a new, unique condition. Each call returns a
// different value.
func NewCondition() quorum.Condition {
	n := atomic.AddUint64(&condCounter, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, n)
	return quorum.NewCondition("test", "sequence", data)
}

// NewAddress returns the address of a new, unique condition.
func NewAddress() quorum.Address {
	return NewCondition().Address()
}

// NewAddresses returns n unique addresses.
func NewAddresses(n int) []quorum.Address {
	res := make([]quorum.Address, n)
	for i := range res {
		res[i] = NewAddress()
	}
	return res
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation or fails the test.
func ParseAddress(t testing.TB, encodedAddress string) quorum.Address {
	t.Helper()

	addr, err := quorum.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
