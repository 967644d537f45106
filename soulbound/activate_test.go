package soulbound_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/axent-pl/soulbound/allowlist"
	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/merkle"
	"github.com/axent-pl/soulbound/soulbound"
	"github.com/axent-pl/soulbound/tokenid"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

type failingProvider struct{}

func (failingProvider) ValidationSchemes(ctx context.Context, in common.Credentials) ([]common.Scheme, error) {
	return nil, errors.New("scheme store unavailable")
}

type fixture struct {
	members  []ethcommon.Address
	proofs   [][]ethcommon.Hash
	registry *allowlist.RootRegistry
}

func newFixture(t *testing.T, n int) fixture {
	t.Helper()
	alg := merkle.HashAlgKeccak256
	members := make([]ethcommon.Address, 0, n)
	leaves := make([]ethcommon.Hash, 0, n)
	for i := 0; i < n; i++ {
		var addr ethcommon.Address
		addr[19] = byte(i + 1)
		leaf, err := merkle.LeafHash(alg, addr.Bytes())
		if err != nil {
			t.Fatalf("LeafHash() failed: %v", err)
		}
		members = append(members, addr)
		leaves = append(leaves, leaf)
	}
	tree, err := merkle.NewTree(alg, leaves)
	if err != nil {
		t.Fatalf("NewTree() failed: %v", err)
	}
	proofs := make([][]ethcommon.Hash, 0, n)
	for _, leaf := range leaves {
		proof, err := tree.Prove(leaf)
		if err != nil {
			t.Fatalf("Prove() failed: %v", err)
		}
		proofs = append(proofs, proof)
	}
	return fixture{
		members:  members,
		proofs:   proofs,
		registry: allowlist.NewRootRegistry(alg, []ethcommon.Hash{tree.Root()}),
	}
}

func TestActivator_Activate(t *testing.T) {
	fx := newFixture(t, 6)
	var outsider ethcommon.Address
	outsider[19] = 0xEE

	tests := []struct {
		name    string
		req     soulbound.ActivationRequest
		wantErr error
	}{
		{
			name: "member activates",
			req: soulbound.ActivationRequest{
				Address:    fx.members[2],
				TemplateID: big.NewInt(7),
				Proof:      fx.proofs[2],
			},
			wantErr: nil,
		},
		{
			name: "outsider is rejected",
			req: soulbound.ActivationRequest{
				Address:    outsider,
				TemplateID: big.NewInt(7),
				Proof:      fx.proofs[2],
			},
			wantErr: common.ErrInvalidCredentials,
		},
		{
			name: "missing proof",
			req: soulbound.ActivationRequest{
				Address:    fx.members[2],
				TemplateID: big.NewInt(7),
			},
			wantErr: common.ErrInvalidCredentials,
		},
		{
			name: "template overflow surfaces after authorization",
			req: soulbound.ActivationRequest{
				Address:    fx.members[2],
				TemplateID: new(big.Int).Lsh(big.NewInt(1), tokenid.TemplateBits),
				Proof:      fx.proofs[2],
			},
			wantErr: tokenid.ErrTemplateOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activator := soulbound.NewActivator(fx.registry)
			got, gotErr := activator.Activate(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(gotErr, tt.wantErr) {
					t.Fatalf("Activate() error = %v, want %v", gotErr, tt.wantErr)
				}
				if got != (tokenid.TokenID{}) {
					t.Errorf("Activate() produced an id on error: %s", got.Hex())
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("Activate() failed: %v", gotErr)
			}
			owner, template := tokenid.Decode(got)
			if owner != tt.req.Address {
				t.Errorf("Decode() owner = %s, want %s", owner.Hex(), tt.req.Address.Hex())
			}
			if template.Cmp(tt.req.TemplateID) != 0 {
				t.Errorf("Decode() template = %s, want %s", template, tt.req.TemplateID)
			}
		})
	}
}

func TestActivator_ProviderFailure(t *testing.T) {
	fx := newFixture(t, 2)
	activator := soulbound.NewActivator(failingProvider{})
	_, err := activator.Activate(context.Background(), soulbound.ActivationRequest{
		Address:    fx.members[0],
		TemplateID: big.NewInt(1),
		Proof:      fx.proofs[0],
	})
	if !errors.Is(err, common.ErrInternal) {
		t.Errorf("Activate() error = %v, want %v", err, common.ErrInternal)
	}
}

func TestActivator_RootReplacement(t *testing.T) {
	fx := newFixture(t, 4)
	activator := soulbound.NewActivator(fx.registry)
	req := soulbound.ActivationRequest{
		Address:    fx.members[0],
		TemplateID: big.NewInt(1),
		Proof:      fx.proofs[0],
	}

	if _, err := activator.Activate(context.Background(), req); err != nil {
		t.Fatalf("Activate() failed before replacement: %v", err)
	}

	// a wholesale root swap invalidates proofs from the old batch
	empty := ethcommon.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	fx.registry.Replace([]ethcommon.Hash{empty})
	if _, err := activator.Activate(context.Background(), req); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("Activate() error = %v after replacement, want %v", err, common.ErrInvalidCredentials)
	}
}
