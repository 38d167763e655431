package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogit/blogit-api/internal/core/domain"
	"github.com/blogit/blogit-api/internal/core/ports"
)

// PasswordPolicy holds the configurable strength rules applied at
// registration and password change.
type PasswordPolicy struct {
	MinLength  int
	BcryptCost int
}

// AccountService implements registration, login/logout, and profile
// management.
type AccountService struct {
	repo     ports.UserRepository
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	policy   PasswordPolicy
	logger   zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, tokens ports.TokenIssuer, denylist ports.TokenDenylist, policy PasswordPolicy, logger zerolog.Logger) *AccountService {
	if policy.MinLength <= 0 {
		policy.MinLength = 8
	}
	if policy.BcryptCost <= 0 {
		policy.BcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{repo: repo, tokens: tokens, denylist: denylist, policy: policy, logger: logger}
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if input.FirstName == "" || input.LastName == "" || input.Username == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: first name, last name, username and email are required", domain.ErrValidation)
	}
	if err := s.checkPassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.policy.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates by username or email. The failure is identical whether
// the identifier is unknown or the password is wrong.
func (s *AccountService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

// Logout places the token id on the denylist until the token would have
// expired anyway. Revoking an already-revoked or expired token is a no-op.
func (s *AccountService) Logout(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, session.TokenID, ttl); err != nil {
		return err
	}
	s.logger.Info().Str("username", session.Identity.Username).Msg("session revoked")
	return nil
}

func (s *AccountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.User, error) {
	if fields.Email != nil {
		normalized := strings.TrimSpace(strings.ToLower(*fields.Email))
		fields.Email = &normalized
	}
	return s.repo.Update(ctx, userID, fields)
}

func (s *AccountService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	if err := s.checkPassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.policy.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("password changed")
	return nil
}

func (s *AccountService) checkPassword(password string) error {
	if len(password) < s.policy.MinLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, s.policy.MinLength)
	}
	return nil
}
