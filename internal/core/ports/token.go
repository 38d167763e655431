package ports

import (
	"context"
	"time"

	"github.com/blogit/blogit-api/internal/core/domain"
)

// TokenIssuer mints a signed session credential for a user. The payload is
// the identity snapshot, never the password hash.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks a credential's signature and expiry. Any failure is
// domain.ErrUnauthenticated; the payload is trusted only after Verify
// succeeds.
type TokenVerifier interface {
	Verify(token string) (*domain.Session, error)
}

// TokenDenylist records revoked token ids until their natural expiry.
// Revoke is idempotent.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
