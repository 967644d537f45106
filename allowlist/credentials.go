package allowlist

import (
	"github.com/axent-pl/soulbound/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// AllowlistCredentials is the caller-supplied activation input: the claimed
// address and the sibling path from hash(address) to a published batch root.
type AllowlistCredentials struct {
	Address ethcommon.Address
	Proof   []ethcommon.Hash
}

func (AllowlistCredentials) Kind() common.Kind { return common.Allowlist }

var _ common.Credentials = AllowlistCredentials{}
