package ports

import (
	"context"

	"github.com/blogit/blogit-api/internal/core/domain"
)

// UpdateUserFields carries a partial profile update. Nil fields are left
// unchanged.
type UpdateUserFields struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
}

// UserRepository is the credential store. Uniqueness of username and email is
// enforced at write time; violations surface as domain.ErrDuplicateIdentifier.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIdentifier matches on username OR email.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	Update(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
