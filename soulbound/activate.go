package soulbound

import (
	"context"
	"math/big"

	"github.com/axent-pl/soulbound/allowlist"
	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/logx"
	"github.com/axent-pl/soulbound/tokenid"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// ActivationRequest is one logical activation attempt: the claimed address,
// the credential template to mint against, and the membership proof.
type ActivationRequest struct {
	Address    ethcommon.Address
	TemplateID *big.Int
	Proof      []ethcommon.Hash
}

// Activator authorizes a request against the published allowlist and derives
// the token id the resulting credential will carry. It keeps no state of its
// own; a failed call leaves no partial effects.
type Activator struct {
	Schemes  common.ValidationSchemeProvider
	verifier allowlist.AllowlistVerifier
}

func NewActivator(schemes common.ValidationSchemeProvider) *Activator {
	return &Activator{Schemes: schemes}
}

func (a *Activator) Activate(ctx context.Context, req ActivationRequest) (tokenid.TokenID, error) {
	in := allowlist.AllowlistCredentials{Address: req.Address, Proof: req.Proof}
	schemes, err := a.Schemes.ValidationSchemes(ctx, in)
	if err != nil {
		logx.L().Debug("could not load validation schemes", "context", ctx, "error", err)
		return tokenid.TokenID{}, common.ErrInternal
	}
	if _, err := a.verifier.Verify(ctx, in, schemes); err != nil {
		return tokenid.TokenID{}, err
	}
	return tokenid.Encode(req.Address, req.TemplateID)
}
