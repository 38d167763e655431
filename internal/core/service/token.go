package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/blogit/blogit-api/internal/core/domain"
)

// sessionClaims is the JWT payload: the identity snapshot plus the registered
// claims (jti for revocation, exp for expiry).
type sessionClaims struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session credentials with HS256 over a
// server-held secret.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue mints a credential for the user. The password hash is never part of
// the payload.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(t.secret))
}

// Verify checks signature, algorithm, and expiry. Every failure collapses to
// domain.ErrUnauthenticated so callers never branch on jwt internals.
func (t *TokenIssuer) Verify(token string) (*domain.Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(t.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, domain.ErrUnauthenticated
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &domain.Session{
		Identity: domain.Identity{
			ID:        claims.Subject,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Username:  claims.Username,
			Email:     claims.Email,
		},
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}
