package soulbound

import (
	"context"
	"fmt"
	"time"

	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/logx"
	"github.com/axent-pl/soulbound/tokenid"
	ethcommon "github.com/ethereum/go-ethereum/common"
	jwtx "github.com/golang-jwt/jwt/v5"
)

// SoulboundIssuer turns a verified principal into issuance artifacts: the
// packed token id, plus a signed activation receipt when a signing key is
// configured. Credential storage and transfer-disabling stay with the
// consuming system; the token id is its unique key.
type SoulboundIssuer struct{}

func (SoulboundIssuer) Kind() common.Kind { return common.Soulbound }

var _ common.Issuer = &SoulboundIssuer{}

func (iss *SoulboundIssuer) Issue(ctx context.Context, principal common.Principal, issueParams common.IssueParams) ([]common.Artifact, error) {
	params, ok := issueParams.(SoulboundIssueParams)
	if !ok {
		logx.L().Debug("could not cast IssueParams to SoulboundIssueParams", "context", ctx)
		return nil, common.ErrInternal
	}
	if !ethcommon.IsHexAddress(string(principal.Subject)) {
		logx.L().Debug("principal subject is not an address", "context", ctx, "subject", principal.Subject)
		return nil, common.ErrInvalidInput
	}
	owner := ethcommon.HexToAddress(string(principal.Subject))

	id, err := tokenid.Encode(owner, params.TemplateID)
	if err != nil {
		logx.L().Debug("could not encode token id", "context", ctx, "error", err)
		return nil, err
	}

	artifacts := make([]common.Artifact, 0, 2)
	artifacts = append(artifacts, common.Artifact{
		Kind:      common.ArtifactTokenID,
		MediaType: "text/plain",
		Bytes:     []byte(id.Hex()),
		Metadata: map[string]any{
			"owner":       owner.Hex(),
			"template_id": params.TemplateID.String(),
		},
	})

	if params.Key.Key != nil {
		receiptBytes, err := iss.signReceipt(owner, id, params)
		if err != nil {
			logx.L().Debug("could not sign activation receipt", "context", ctx, "error", err)
			return nil, common.ErrInternal
		}
		artifacts = append(artifacts, common.Artifact{
			Kind:      common.ArtifactActivationReceipt,
			MediaType: "application/jwt",
			Bytes:     receiptBytes,
		})
	}

	return artifacts, nil
}

func (iss *SoulboundIssuer) signReceipt(owner ethcommon.Address, id tokenid.TokenID, params SoulboundIssueParams) ([]byte, error) {
	now := time.Now()
	claims := jwtx.MapClaims{
		"sub":         owner.Hex(),
		"iss":         params.Issuer,
		"iat":         now.Unix(),
		"token_id":    id.Hex(),
		"template_id": params.TemplateID.String(),
	}
	if params.Exp > 0 {
		claims["exp"] = now.Add(params.Exp).Unix()
	}

	signingMethod, err := params.Key.Alg.ToGoJWT()
	if err != nil {
		return nil, fmt.Errorf("could not sign receipt: %w", err)
	}
	token := jwtx.NewWithClaims(signingMethod, claims)
	if params.Key.Kid != "" {
		token.Header["kid"] = params.Key.Kid
	}
	tokenString, err := token.SignedString(params.Key.Key)
	if err != nil {
		return nil, fmt.Errorf("could not sign receipt: %w", err)
	}
	return []byte(tokenString), nil
}
