package proposals

import (
	"crypto/sha256"

	"github.com/iov-one/quorum"
	"golang.org/x/crypto/sha3"
)

// IDFunc derives the identifier of a proposal from its content.
type IDFunc func(proposer, target quorum.Address, payload []byte) []byte

// Keccak256ID returns keccak256(proposer || target || payload), the packed
// encoding used by deployed multisig contracts.
func Keccak256ID(proposer, target quorum.Address, payload []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(proposer)
	_, _ = h.Write(target)
	_, _ = h.Write(payload)
	return h.Sum(nil)
}

// SHA256ID returns sha256(proposer || target || payload).
func SHA256ID(proposer, target quorum.Address, payload []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(proposer)
	_, _ = h.Write(target)
	_, _ = h.Write(payload)
	return h.Sum(nil)
}
