package domain

import "errors"

const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingToken = errors.New("no token provided")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models the authenticated actor. The service holds exactly one
// principal: the admin configured at startup.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
