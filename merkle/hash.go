package merkle

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// HashAlg represents the hash function used for allowlist leaves and internal
// tree nodes. Proofs only validate with the algorithm the tree was built with.
type HashAlg int

const (
	HashAlgUnknown HashAlg = iota

	// HashAlgKeccak256 matches the keccak-style pairwise hashing of
	// on-chain allowlist verifiers and is the default everywhere.
	HashAlgKeccak256
	HashAlgSHA256
	HashAlgBLAKE3
)

func (a HashAlg) String() string {
	mapping := map[HashAlg]string{
		HashAlgKeccak256: "keccak256",
		HashAlgSHA256:    "sha256",
		HashAlgBLAKE3:    "blake3",
	}
	if s, ok := mapping[a]; ok {
		return s
	}
	return "unknown"
}

func ParseHashAlg(s string) (HashAlg, error) {
	mapping := map[string]HashAlg{
		"keccak256": HashAlgKeccak256,
		"sha256":    HashAlgSHA256,
		"blake3":    HashAlgBLAKE3,
	}
	if a, ok := mapping[s]; ok {
		return a, nil
	}
	return HashAlgUnknown, fmt.Errorf("unknown hash alg: %s", s)
}

func (a HashAlg) New() (hash.Hash, error) {
	switch a {
	case HashAlgKeccak256:
		return sha3.NewLegacyKeccak256(), nil
	case HashAlgSHA256:
		return sha256.New(), nil
	case HashAlgBLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unknown hash alg: %s", a)
	}
}

// LeafHash hashes raw leaf data, e.g. the 20 bytes of a principal address.
func LeafHash(a HashAlg, data []byte) (common.Hash, error) {
	h, err := a.New()
	if err != nil {
		return common.Hash{}, err
	}
	h.Write(data)
	return common.BytesToHash(h.Sum(nil)), nil
}
