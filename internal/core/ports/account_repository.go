package ports

import (
	"context"

	"github.com/klorpe/accountpool/internal/core/domain"
)

// AccountRepository owns the backing store of credential records. It is the
// sole writer of the persisted data; every mutation rewrites the full record
// sequence as one unit, so implementations must serialize mutations.
type AccountRepository interface {
	// ListAll returns every record in insertion order. A missing or
	// unreadable store reads as empty, never as an error.
	ListAll(ctx context.Context) ([]domain.Account, error)
	// FindFirstAvailable returns the first record (in stored order) with
	// status available, or domain.ErrNoAvailableAccounts.
	FindFirstAvailable(ctx context.Context) (*domain.Account, error)
	// SetStatus updates one record's status and persists the whole store.
	// Returns domain.ErrAccountNotFound when no record has the id.
	SetStatus(ctx context.Context, id string, status domain.AccountStatus) (*domain.Account, error)
	// ReplaceAll overwrites the entire store with the given sequence.
	ReplaceAll(ctx context.Context, accounts []domain.Account) error
}
