// Package jsonfile persists the credential pool as a single human-readable
// JSON array, rewritten wholesale on every mutation.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/klorpe/accountpool/internal/core/domain"
)

// AccountRepository stores all records in one JSON file. HTTP handlers run
// concurrently and the file is the only synchronization point, so every
// read-modify-write happens under the mutex; without it two racing status
// updates would silently drop one of the writes.
type AccountRepository struct {
	mu   sync.Mutex
	path string
}

// NewAccountRepository ensures the data directory and file exist, creating an
// empty store when missing.
func NewAccountRepository(path string) (*AccountRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	r := &AccountRepository{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.write([]domain.Account{}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *AccountRepository) ListAll(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(), nil
}

func (r *AccountRepository) FindFirstAvailable(_ context.Context) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.read() {
		if a.Status == domain.StatusAvailable {
			account := a
			return &account, nil
		}
	}
	return nil, domain.ErrNoAvailableAccounts
}

func (r *AccountRepository) SetStatus(_ context.Context, id string, status domain.AccountStatus) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := r.read()
	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].Status = status
			if err := r.write(accounts); err != nil {
				return nil, err
			}
			account := accounts[i]
			return &account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepository) ReplaceAll(_ context.Context, accounts []domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(accounts)
}

// read loads the full record sequence. A missing or corrupt file reads as an
// empty store; read failures never surface to callers.
func (r *AccountRepository) read() []domain.Account {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []domain.Account{}
	}

	var accounts []domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return []domain.Account{}
	}
	return accounts
}

// write serializes the whole sequence and replaces the file via a temp file
// and rename, so a crash mid-write never leaves a truncated store behind.
func (r *AccountRepository) write(accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}
	return nil
}
