package service

import (
	"sync"
	"time"
)

// attemptWindow tracks consecutive failed logins from one address.
type attemptWindow struct {
	count   int
	resetAt time.Time
}

// LoginThrottle counts failed login attempts per client address within a
// fixed lockout window. It sits in front of credential checking: a blocked
// address is rejected before the password is ever compared, so lockout gives
// no signal about credential validity.
type LoginThrottle struct {
	mu          sync.Mutex
	attempts    map[string]*attemptWindow
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewLoginThrottle allows maxAttempts failed logins per address within the
// given window before blocking further attempts.
func NewLoginThrottle(maxAttempts int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		attempts:    make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Window returns the configured lockout duration.
func (t *LoginThrottle) Window() time.Duration {
	return t.window
}

// Blocked reports whether the address has reached the attempt limit within
// an active window. Expired entries are removed lazily.
func (t *LoginThrottle) Blocked(addr string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.attempts[addr]
	if !ok {
		return false
	}
	if !t.now().Before(w.resetAt) {
		delete(t.attempts, addr)
		return false
	}
	return w.count >= t.maxAttempts
}

// RecordFailure counts one failed attempt. The first failure (or the first
// after the previous window expired) opens a fresh window; failures inside an
// active window increment the counter without extending it.
func (t *LoginThrottle) RecordFailure(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	w, ok := t.attempts[addr]
	if !ok || !now.Before(w.resetAt) {
		t.attempts[addr] = &attemptWindow{count: 1, resetAt: now.Add(t.window)}
		return
	}
	w.count++
}

// Clear drops the counter for the address after a successful login.
func (t *LoginThrottle) Clear(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, addr)
}
