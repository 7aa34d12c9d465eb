package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// LedgerRepository appends transaction history rows. Entries are never updated or deleted.
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
}
