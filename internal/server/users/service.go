package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avasquez/softjobs/internal/common"
	"github.com/avasquez/softjobs/internal/server/auth"
	"github.com/avasquez/softjobs/internal/server/config"
)

type Service struct {
	repo                  Repository
	hasher                *auth.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, hasher *auth.Hasher, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the profile, hashes the password and persists the new
// user. The duplicate-email pre-check is advisory; the unique index in the
// store is what actually guarantees uniqueness under concurrent inserts, and
// both paths surface common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, email, password, role, language string) (*User, error) {

	if email == "" || password == "" || role == "" || language == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	}
	if !ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown rol %q", common.ErrorValidation, role)
	}
	if !ValidLanguage(language) {
		return nil, fmt.Errorf("%w: unknown lenguaje %q", common.ErrorValidation, language)
	}

	email = NormalizeEmail(email)

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Language:     language,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed session token. Unknown
// email and wrong password collapse into the same error so the response
// cannot be used to enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// GetByEmail returns the user for the identity asserted by a verified token.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {

	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}
