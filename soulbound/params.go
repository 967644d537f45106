package soulbound

import (
	"math/big"
	"time"

	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/sig"
)

// SoulboundIssueParams configures one issuance: the template encoded into the
// token id and, when Key is set, the signed activation receipt.
type SoulboundIssueParams struct {
	TemplateID *big.Int
	Issuer     string
	// Exp bounds the receipt validity; zero means the receipt never expires.
	Exp time.Duration
	Key sig.SignatureKey
}

func (SoulboundIssueParams) Kind() common.Kind { return common.Soulbound }

var _ common.IssueParams = SoulboundIssueParams{}
