package merkle

import (
	"bytes"
	"hash"

	"github.com/ethereum/go-ethereum/common"
)

// MaxProofDepth caps the number of siblings a proof may carry. A depth of 256
// already exceeds any tree addressable by a 256-bit path; longer input is
// rejected without hashing anything.
const MaxProofDepth = 256

// VerifyProof reconstructs a root from leaf and the sibling path and compares
// it to root. Each pair is concatenated in byte order before hashing, so
// proofs carry no direction bits and validate independently of leaf position.
// An empty proof only validates when leaf equals root.
func VerifyProof(alg HashAlg, leaf common.Hash, proof []common.Hash, root common.Hash) bool {
	if len(proof) > MaxProofDepth {
		return false
	}
	h, err := alg.New()
	if err != nil {
		return false
	}
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(h, computed, sibling)
	}
	return computed == root
}

func hashPair(h hash.Hash, a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	h.Reset()
	h.Write(a[:])
	h.Write(b[:])
	return common.BytesToHash(h.Sum(nil))
}
