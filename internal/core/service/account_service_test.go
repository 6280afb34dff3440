package service

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/klorpe/accountpool/internal/core/domain"
)

type stubAccountRepo struct {
	accounts   []domain.Account
	replaceErr error
}

func (r *stubAccountRepo) ListAll(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *stubAccountRepo) FindFirstAvailable(_ context.Context) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Status == domain.StatusAvailable {
			account := a
			return &account, nil
		}
	}
	return nil, domain.ErrNoAvailableAccounts
}

func (r *stubAccountRepo) SetStatus(_ context.Context, id string, status domain.AccountStatus) (*domain.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].Status = status
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) ReplaceAll(_ context.Context, accounts []domain.Account) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.accounts = accounts
	return nil
}

func TestAccountService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{{ID: "a1", Status: domain.StatusAvailable}}}
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "a1", "banned"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.accounts[0].Status != domain.StatusAvailable {
		t.Fatalf("store must be untouched after a rejected status")
	}
}

func TestAccountService_UpdateStatus_UnknownID(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "nope", domain.StatusUsed); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_UpdateStatus_Success(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{{ID: "a1", Status: domain.StatusAvailable}}}
	svc := NewAccountService(repo, zerolog.Nop())

	account, err := svc.UpdateStatus(context.Background(), "a1", domain.StatusUsed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if account.Status != domain.StatusUsed {
		t.Fatalf("expected used, got %s", account.Status)
	}
}

func TestAccountService_ImportFromText_ReplacesStore(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{{ID: "old", Email: "old@x.com", Password: "pw", Status: domain.StatusUsed}}}
	svc := NewAccountService(repo, zerolog.Nop())

	result, err := svc.ImportFromText(context.Background(), "x@y.com:pw1\nbad-line\nz@q.com:pw2")
	if err != nil {
		t.Fatalf("ImportFromText: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 imported, got %d", result.Count)
	}
	if len(repo.accounts) != 2 {
		t.Fatalf("import must replace, not merge; store has %d records", len(repo.accounts))
	}
	if repo.accounts[0].Email != "x@y.com" || repo.accounts[1].Email != "z@q.com" {
		t.Fatalf("unexpected store contents: %+v", repo.accounts)
	}
}

func TestAccountService_ImportFromText_Reimport(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	text := "a@b.com:one\nc@d.com:two"
	if _, err := svc.ImportFromText(context.Background(), text); err != nil {
		t.Fatalf("first import: %v", err)
	}
	firstIDs := []string{repo.accounts[0].ID, repo.accounts[1].ID}

	if _, err := svc.ImportFromText(context.Background(), text); err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(repo.accounts) != 2 {
		t.Fatalf("re-import must replace, got %d records", len(repo.accounts))
	}
	if repo.accounts[0].ID == firstIDs[0] {
		t.Fatalf("re-import should mint fresh ids")
	}
}

func TestAccountService_ImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	if err := os.WriteFile(path, []byte("a@b.com:pw\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	result, err := svc.ImportFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportFromFile: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 imported, got %d", result.Count)
	}
}

func TestAccountService_ImportFromFile_MissingFile(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{{ID: "keep"}}}
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.ImportFromFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if len(repo.accounts) != 1 || repo.accounts[0].ID != "keep" {
		t.Fatalf("failed import must leave the store unchanged")
	}
}

func TestAccountService_Bootstrap_SkipsNonEmptyStore(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{{ID: "keep", Email: "k@x.com", Password: "pw"}}}
	svc := NewAccountService(repo, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("new@x.com:pw\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc.Bootstrap(context.Background(), path, "")
	if repo.accounts[0].ID != "keep" {
		t.Fatalf("bootstrap must not touch a non-empty store")
	}
}

func TestAccountService_Bootstrap_SeedsFromFile(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("seed@x.com:pw\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc.Bootstrap(context.Background(), path, "")
	if len(repo.accounts) != 1 || repo.accounts[0].Email != "seed@x.com" {
		t.Fatalf("expected seeded store, got %+v", repo.accounts)
	}
}

func TestAccountService_Bootstrap_FallsBackToBase64(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	blob := base64.StdEncoding.EncodeToString([]byte("b64@x.com:pw\n"))
	svc.Bootstrap(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), blob)

	if len(repo.accounts) != 1 || repo.accounts[0].Email != "b64@x.com" {
		t.Fatalf("expected base64 fallback to seed the store, got %+v", repo.accounts)
	}
}

func TestAccountService_Bootstrap_InvalidBase64(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	svc.Bootstrap(context.Background(), "", "%%%not-base64%%%")
	if len(repo.accounts) != 0 {
		t.Fatalf("invalid base64 must not seed anything")
	}
}
