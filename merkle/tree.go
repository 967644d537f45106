package merkle

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var ErrEmptyTree = errors.New("tree needs at least one leaf")
var ErrUnknownLeaf = errors.New("leaf not in tree")

// Tree is an in-memory Merkle tree over pre-hashed leaves. It serves the
// administrator side: hash a batch of principals, publish the root, and hand
// each member the sibling path it needs to activate.
type Tree struct {
	alg    HashAlg
	levels [][]common.Hash // levels[0] holds the leaves, the last level the root
}

func NewTree(alg HashAlg, leaves []common.Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	h, err := alg.New()
	if err != nil {
		return nil, err
	}

	level := make([]common.Hash, len(leaves))
	copy(level, leaves)
	levels := [][]common.Hash{level}
	for len(level) > 1 {
		next := make([]common.Hash, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, hashPair(h, level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			// the odd node is promoted unchanged
			next = append(next, level[len(level)-1])
		}
		levels = append(levels, next)
		level = next
	}
	return &Tree{alg: alg, levels: levels}, nil
}

func (t *Tree) Alg() HashAlg { return t.alg }

func (t *Tree) Len() int { return len(t.levels[0]) }

func (t *Tree) Root() common.Hash {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Prove returns the sibling path for the first occurrence of leaf. Levels
// where the node was promoted without a sibling contribute nothing.
func (t *Tree) Prove(leaf common.Hash) ([]common.Hash, error) {
	index := -1
	for i, l := range t.levels[0] {
		if l == leaf {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrUnknownLeaf
	}

	proof := make([]common.Hash, 0, len(t.levels)-1)
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := index ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling])
		}
		index /= 2
	}
	return proof, nil
}
