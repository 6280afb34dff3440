package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/klorpe/accountpool/internal/core/domain"
	"github.com/klorpe/accountpool/internal/core/ports"
)

// AccountService orchestrates the credential store and the importer.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.repo.ListAll(ctx)
}

func (s *AccountService) FirstAvailable(ctx context.Context) (*domain.Account, error) {
	return s.repo.FindFirstAvailable(ctx)
}

func (s *AccountService) UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) (*domain.Account, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	account, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", id).Str("status", string(status)).Msg("account status updated")
	return account, nil
}

// ImportFromFile reads a colon-delimited txt file and replaces the entire
// store with its records. Read failures surface before the store is touched;
// a successful import is always a full replacement, never a merge.
func (s *AccountService) ImportFromFile(ctx context.Context, path string) (*ports.ImportResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return s.ImportFromText(ctx, string(content))
}

// ImportFromText parses the blob and replaces the store contents.
func (s *AccountService) ImportFromText(ctx context.Context, text string) (*ports.ImportResult, error) {
	accounts := ParseAccounts(text)

	if err := s.repo.ReplaceAll(ctx, accounts); err != nil {
		return nil, fmt.Errorf("replace accounts: %w", err)
	}

	s.logger.Info().Int("count", len(accounts)).Msg("accounts imported")
	return &ports.ImportResult{Count: len(accounts)}, nil
}

// Bootstrap seeds the store once at startup when it is empty. An existing
// file path takes precedence over the base64 blob; either source failing is
// logged as a warning and never fatal.
func (s *AccountService) Bootstrap(ctx context.Context, filePath, base64Text string) {
	existing, err := s.repo.ListAll(ctx)
	if err != nil || len(existing) > 0 {
		return
	}

	if filePath != "" {
		res, err := s.ImportFromFile(ctx, filePath)
		if err == nil {
			s.logger.Info().Int("count", res.Count).Str("path", filePath).Msg("store seeded from ACCOUNTS_FILE")
			return
		}
		s.logger.Warn().Err(err).Str("path", filePath).Msg("ACCOUNTS_FILE set but not importable")
	}

	if base64Text != "" {
		content, err := base64.StdEncoding.DecodeString(base64Text)
		if err != nil {
			s.logger.Warn().Err(err).Msg("ACCOUNTS_TXT is not valid base64")
			return
		}
		res, err := s.ImportFromText(ctx, string(content))
		if err != nil {
			s.logger.Warn().Err(err).Msg("ACCOUNTS_TXT import failed")
			return
		}
		s.logger.Info().Int("count", res.Count).Msg("store seeded from ACCOUNTS_TXT")
	}
}
