package soulbound

import (
	"errors"
	"fmt"

	"github.com/axent-pl/soulbound/sig"
	jwtx "github.com/golang-jwt/jwt/v5"
)

// ReceiptClaims are the registered claims plus the credential fields the
// issuer embeds in an activation receipt.
type ReceiptClaims struct {
	jwtx.RegisteredClaims
	TokenID    string `json:"token_id"`
	TemplateID string `json:"template_id"`
}

// ParseReceipt validates a receipt against key and returns its claims.
func ParseReceipt(token string, key sig.SignatureVerificationKey) (*ReceiptClaims, error) {
	claims := &ReceiptClaims{}
	parsed, err := jwtx.ParseWithClaims(
		token,
		claims,
		func(t *jwtx.Token) (interface{}, error) {
			return key.Key, nil
		},
		jwtx.WithValidMethods([]string{key.Alg.String()}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not parse receipt: %w", err)
	}
	if parsed == nil || !parsed.Valid {
		return nil, errors.New("receipt is invalid")
	}
	return claims, nil
}
