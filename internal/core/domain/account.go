package domain

import (
	"errors"
	"time"
)

// AccountStatus marks whether a stored credential has been handed out.
type AccountStatus string

const (
	StatusAvailable AccountStatus = "available"
	StatusUsed      AccountStatus = "used"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrNoAvailableAccounts = errors.New("no available accounts found")
var ErrInvalidStatus = errors.New("invalid status")
var ErrMissingFields = errors.New("missing required fields")

// ValidStatus reports whether s is one of the two allowed account states.
func ValidStatus(s AccountStatus) bool {
	return s == StatusAvailable || s == StatusUsed
}

// Account is one stored email/password pair from the pool.
// Passwords are kept in plain text: the pool exists to hand working
// credentials to the operator, so there is nothing to hash against.
type Account struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Password  string        `json:"password"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
