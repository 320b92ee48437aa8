package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-api/internal/core/domain"
	"github.com/hrdesk/hr-api/internal/core/ports"
	"github.com/hrdesk/hr-api/internal/core/token"
	"github.com/hrdesk/hr-api/internal/core/validation"
)

// AuthService implements login against stored user accounts.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func loginRules() validation.RuleSet {
	return validation.RuleSet{
		"email": {
			Rules: []validation.Rule{validation.Required{}, validation.ValidEmail{}},
			Messages: map[string]string{
				"required":    "Email wajib diisi",
				"valid_email": "Email tidak valid",
			},
		},
		"password": {
			Rules: []validation.Rule{validation.Required{}},
			Messages: map[string]string{
				"required": "Password wajib diisi",
			},
		},
	}
}

// Login validates the credentials payload, verifies the password against the
// stored digest, and issues a bearer token. The unknown-email and
// wrong-password cases are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	input := map[string]string{"email": email, "password": password}
	result, err := validation.Validate(ctx, input, loginRules(), nil)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	if !result.Valid() {
		return "", nil, &domain.ValidationError{Fields: result.Errors}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("email", email).Msg("login rejected: unknown email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !VerifyPassword(password, user.PasswordDigest) {
		s.logger.Info().Str("email", email).Msg("login rejected: wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("login succeeded")
	return signed, user, nil
}
