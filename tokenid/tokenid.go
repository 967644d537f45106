// Package tokenid packs a 160-bit owner address and a 96-bit template
// identifier into a single 256-bit soulbound token identifier.
package tokenid

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TemplateBits is the width reserved for the template identifier in the low
// bits of a token id. The owner address occupies the high 160 bits.
const TemplateBits = 96

var ErrTemplateOverflow = errors.New("template id exceeds 96 bits")
var ErrInvalidTemplate = errors.New("template id must be a non-negative integer")

// MaxTemplateID returns 2^96 - 1, the largest encodable template id.
func MaxTemplateID() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), TemplateBits)
	return max.Sub(max, big.NewInt(1))
}

// TokenID is the packed identifier: owner << 96 | template, big-endian. It is
// a plain value type so consuming systems can use it directly as a unique key.
type TokenID [32]byte

func (id TokenID) Bytes() []byte { return id[:] }

func (id TokenID) Big() *big.Int { return new(big.Int).SetBytes(id[:]) }

func (id TokenID) Hex() string { return common.Hash(id).Hex() }

// Encode packs owner and template into a TokenID. Encoding is injective:
// distinct (owner, template) pairs always yield distinct ids.
func Encode(owner common.Address, template *big.Int) (TokenID, error) {
	if template == nil || template.Sign() < 0 {
		return TokenID{}, ErrInvalidTemplate
	}
	if template.BitLen() > TemplateBits {
		return TokenID{}, ErrTemplateOverflow
	}
	packed := new(big.Int).SetBytes(owner.Bytes())
	packed.Lsh(packed, TemplateBits)
	packed.Or(packed, template)

	var id TokenID
	packed.FillBytes(id[:])
	return id, nil
}

// Decode is total: every 256-bit value splits back into the owner and
// template that Encode packed.
func Decode(id TokenID) (common.Address, *big.Int) {
	v := new(big.Int).SetBytes(id[:])
	template := new(big.Int).And(v, MaxTemplateID())
	owner := common.BytesToAddress(v.Rsh(v, TemplateBits).Bytes())
	return owner, template
}
