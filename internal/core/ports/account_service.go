package ports

import (
	"context"

	"github.com/klorpe/accountpool/internal/core/domain"
)

type ImportResult struct {
	Count int
}

type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	FirstAvailable(ctx context.Context) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) (*domain.Account, error)
	// ImportFromFile parses a colon-delimited txt file and replaces the
	// entire store with its records. Always a destructive replacement.
	ImportFromFile(ctx context.Context, path string) (*ImportResult, error)
	// ImportFromText does the same from an in-memory blob.
	ImportFromText(ctx context.Context, text string) (*ImportResult, error)
}
