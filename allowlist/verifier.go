package allowlist

import (
	"context"

	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/logx"
	"github.com/axent-pl/soulbound/merkle"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

type AllowlistVerifier struct{}

var _ common.Verifier = &AllowlistVerifier{}

func (v *AllowlistVerifier) Kind() common.Kind { return common.Allowlist }

func (v *AllowlistVerifier) Verify(ctx context.Context, in common.Credentials, stored []common.Scheme) (common.Principal, error) {
	cred, ok := in.(AllowlistCredentials)
	if !ok {
		logx.L().Debug("could not cast InputCredentials to AllowlistCredentials", "context", ctx)
		return common.Principal{}, common.ErrInvalidInput
	}
	if cred.Address == (ethcommon.Address{}) {
		logx.L().Debug("zero address", "context", ctx)
		return common.Principal{}, common.ErrInvalidInput
	}
	if len(cred.Proof) == 0 {
		logx.L().Debug("empty proof", "context", ctx)
		return common.Principal{}, common.ErrInvalidCredentials
	}

	for _, s := range stored {
		scheme, ok := s.(AllowlistScheme)
		if !ok || len(scheme.Roots) == 0 {
			continue
		}
		// an oversized proof is indistinguishable from a failed one for the caller
		if len(cred.Proof) > scheme.maxProofDepth() {
			logx.L().Debug("proof exceeds scheme depth bound", "context", ctx, "proof_len", len(cred.Proof))
			continue
		}
		leaf, err := merkle.LeafHash(scheme.Alg, cred.Address.Bytes())
		if err != nil {
			logx.L().Debug("could not hash leaf", "context", ctx, "error", err)
			continue
		}
		for _, root := range scheme.Roots {
			if !merkle.VerifyProof(scheme.Alg, leaf, cred.Proof, root) {
				continue
			}
			return common.Principal{
				Subject: common.SubjectID(cred.Address.Hex()),
				Attributes: map[string]any{
					"merkle_root":      root.Hex(),
					"snapshot_version": scheme.SnapshotVersion,
				},
			}, nil
		}
	}
	return common.Principal{}, common.ErrInvalidCredentials
}
