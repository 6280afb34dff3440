package ports

import (
	"context"

	"github.com/klorpe/accountpool/internal/core/domain"
)

type AuthService interface {
	// Login validates the admin credentials and returns a signed bearer
	// token plus the authenticated principal.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify checks a bearer token's signature and expiry and returns the
	// principal it encodes.
	Verify(ctx context.Context, token string) (*domain.User, error)
}

// LoginThrottle tracks failed login attempts per client address.
type LoginThrottle interface {
	// Blocked reports whether the address has exhausted its attempts in
	// the current window.
	Blocked(addr string) bool
	// RecordFailure counts one failed attempt, opening a fresh window if
	// the previous one expired.
	RecordFailure(addr string)
	// Clear drops the counter after a successful login.
	Clear(addr string)
}
