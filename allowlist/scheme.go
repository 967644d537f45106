package allowlist

import (
	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/merkle"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// AllowlistScheme is the stored side of verification: the published batch
// roots and the hash algorithm the batches were built with. Multiple roots may
// be live at once; a proof matching any one of them is accepted.
type AllowlistScheme struct {
	// SnapshotVersion names the registry snapshot the roots came from. It is
	// echoed into the principal attributes on success.
	SnapshotVersion string
	Roots           []ethcommon.Hash
	Alg             merkle.HashAlg
	// MaxProofDepth bounds accepted proof length; zero means merkle.MaxProofDepth.
	MaxProofDepth int
}

func (AllowlistScheme) Kind() common.Kind { return common.Allowlist }

var _ common.Scheme = AllowlistScheme{}

func (s AllowlistScheme) maxProofDepth() int {
	if s.MaxProofDepth > 0 {
		return s.MaxProofDepth
	}
	return merkle.MaxProofDepth
}
