package allowlist

import (
	"context"
	"crypto/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/axent-pl/soulbound/common"
	"github.com/axent-pl/soulbound/merkle"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
)

// RootSnapshot is one immutable generation of the published allowlist roots.
// The administrator replaces the whole set at once; verification always reads
// a single coherent snapshot.
type RootSnapshot struct {
	Version   ulid.ULID
	CreatedAt time.Time
	Alg       merkle.HashAlg
	Roots     []ethcommon.Hash
}

// RootRegistry holds the live snapshot. Reads are lock-free; Replace is
// serialized so snapshot versions stay monotonic.
type RootRegistry struct {
	alg     merkle.HashAlg
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	current atomic.Value // RootSnapshot
}

func NewRootRegistry(alg merkle.HashAlg, roots []ethcommon.Hash) *RootRegistry {
	r := &RootRegistry{
		alg:     alg,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	r.Replace(roots)
	return r
}

// Replace swaps the published root set wholesale and returns the new snapshot.
// The input slice is copied; later mutation by the caller has no effect.
func (r *RootRegistry) Replace(roots []ethcommon.Hash) RootSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	snapshot := RootSnapshot{
		Version:   ulid.MustNew(ulid.Timestamp(now), r.entropy),
		CreatedAt: now,
		Alg:       r.alg,
		Roots:     append([]ethcommon.Hash(nil), roots...),
	}
	r.current.Store(snapshot)
	return snapshot
}

// Current returns the live snapshot.
func (r *RootRegistry) Current() RootSnapshot {
	return r.current.Load().(RootSnapshot)
}

// ValidationSchemes exposes the live snapshot as a stored scheme, so a
// RootRegistry can back an AllowlistVerifier directly.
func (r *RootRegistry) ValidationSchemes(ctx context.Context, in common.Credentials) ([]common.Scheme, error) {
	snapshot := r.Current()
	return []common.Scheme{AllowlistScheme{
		SnapshotVersion: snapshot.Version.String(),
		Roots:           append([]ethcommon.Hash(nil), snapshot.Roots...),
		Alg:             snapshot.Alg,
	}}, nil
}

var _ common.ValidationSchemeProvider = (*RootRegistry)(nil)
