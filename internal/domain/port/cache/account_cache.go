package cache

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// AccountListCache keeps a user's account list between reads.
// Implementations must treat failures as misses; the store stays the source of truth.
//
// Every Invalidate bumps the user's version. Get reports the version seen on a
// miss, and Set stores the list only while that version is still current, so a
// list read before a concurrent write is never cached after it.
type AccountListCache interface {
	// Get returns the cached list, or on a miss the version a later Set must
	// present. A negative version means the cache is unusable and Set is skipped.
	Get(ctx context.Context, userID uint64) (accounts []*entity.Account, version int64, hit bool)
	Set(ctx context.Context, userID uint64, version int64, accounts []*entity.Account)
	Invalidate(ctx context.Context, userID uint64)
}
