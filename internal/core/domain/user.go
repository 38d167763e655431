package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials is returned for an unknown identifier and for a
	// wrong password alike, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateIdentifier signals a username or email already in use.
	ErrDuplicateIdentifier = errors.New("username or email already in use")
	ErrUserNotFound        = errors.New("user not found")
	// ErrUnauthenticated covers a missing, malformed, expired, or revoked
	// session credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrValidation marks input that failed a business rule (wrap it with
	// the specific message).
	ErrValidation = errors.New("invalid input")
)

// User models a registered account. PasswordHash never crosses the API
// boundary.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the snapshot of a user carried inside a session credential.
type Identity struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// Session is a verified session credential: the identity it asserts plus the
// token metadata needed for revocation.
type Session struct {
	Identity  Identity
	TokenID   string
	ExpiresAt time.Time
}
