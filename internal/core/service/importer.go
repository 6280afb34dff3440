package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/klorpe/accountpool/internal/core/domain"
)

// ParseAccounts turns a colon-delimited text blob into credential records.
// Each non-empty line splits at the first ':' into email and password, both
// trimmed. Lines without a colon, or where either half trims to empty, are
// dropped. Record order matches input line order; every record starts out
// available.
func ParseAccounts(text string) []domain.Account {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	now := time.Now().UTC()

	accounts := make([]domain.Account, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		email, password, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		email = strings.TrimSpace(email)
		password = strings.TrimSpace(password)
		if email == "" || password == "" {
			continue
		}
		accounts = append(accounts, domain.Account{
			ID:        "acc_" + uuid.NewString(),
			Email:     email,
			Password:  password,
			Status:    domain.StatusAvailable,
			CreatedAt: now,
		})
	}
	return accounts
}
