package ports

import (
	"context"

	"github.com/blogit/blogit-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// AccountService defines use-case operations on user accounts.
type AccountService interface {
	// Register creates the account but grants no session; the caller logs
	// in separately.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login accepts a username or email as identifier and returns the
	// signed session credential alongside the user.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	// Logout revokes the session's token for its remaining lifetime.
	// Safe to call repeatedly.
	Logout(ctx context.Context, session *domain.Session) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, fields UpdateUserFields) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
