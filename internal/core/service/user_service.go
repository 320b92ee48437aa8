package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-api/internal/core/domain"
	"github.com/hrdesk/hr-api/internal/core/ports"
	"github.com/hrdesk/hr-api/internal/core/validation"
)

const usersCollection = "users"

var hasLetter = regexp.MustCompile(`[A-Za-z]`)
var hasDigit = regexp.MustCompile(`[0-9]`)

type UserService struct {
	repo   ports.UserRepository
	exists validation.ExistenceChecker
	cache  RecordCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, exists validation.ExistenceChecker, cache RecordCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, exists: exists, cache: cache, logger: logger}
}

// passwordField builds the password rule chain: required, letters and digits
// both present, at least 8 characters.
func passwordField(messages map[string]string) validation.Field {
	return validation.Field{
		Rules: []validation.Rule{
			validation.Required{},
			validation.RegexMatch{Pattern: hasLetter},
			validation.RegexMatch{Pattern: hasDigit},
			validation.MinLength{N: 8},
		},
		Messages: messages,
	}
}

func createUserRules() validation.RuleSet {
	return validation.RuleSet{
		"email": {
			Rules: []validation.Rule{
				validation.Required{},
				validation.ValidEmail{},
				validation.IsUnique{Collection: usersCollection, Field: "email"},
			},
			Messages: map[string]string{
				"required":    "Email wajib diisi",
				"valid_email": "Email tidak valid",
				"is_unique":   "Email sudah terdaftar",
			},
		},
		"password": passwordField(map[string]string{
			"required":    "Password wajib diisi",
			"regex_match": "Password harus mengandung gabungan huruf dan angka",
			"min_length":  "Password minimal 8 karakter",
		}),
	}
}

func changePasswordRules() validation.RuleSet {
	return validation.RuleSet{
		"new_password": passwordField(map[string]string{
			"required":    "Password wajib diisi",
			"regex_match": "Password baru harus mengandung gabungan huruf dan angka",
			"min_length":  "Password baru minimal 8 karakter",
		}),
		"old_password": {
			Rules: []validation.Rule{validation.Required{}},
			Messages: map[string]string{
				"required": "Password lama wajib diisi",
			},
		},
	}
}

func changeEmailRules() validation.RuleSet {
	return validation.RuleSet{
		"email": {
			Rules: []validation.Rule{validation.Required{}, validation.ValidEmail{}},
			Messages: map[string]string{
				"required":    "Email wajib diisi",
				"valid_email": "Email tidak valid",
			},
		},
	}
}

// List returns all user accounts, newest first. An empty store is reported
// as domain.ErrNoUsers rather than an empty slice.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	var cached domain.User
	found, err := s.cache.Get(ctx, usersCollection, id, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("user cache read failed")
	} else if found {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, usersCollection, id, user); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("user cache write failed")
	}
	return user, nil
}

// Create validates the plaintext credentials, then hashes the password and
// persists the account. The digest is computed only after validation passes.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	input := map[string]string{"email": in.Email, "password": in.Password}
	result, err := validation.Validate(ctx, input, createUserRules(), s.exists)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if !result.Valid() {
		return nil, &domain.ValidationError{Fields: result.Errors}
	}

	digest, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          in.Email,
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int64("id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// Update branches on the payload: when old_password or new_password is
// supplied it is a password change, which requires the old password to match
// the stored digest; otherwise only the email is updated.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.OldPassword != "" || in.NewPassword != "" {
		input := map[string]string{"new_password": in.NewPassword, "old_password": in.OldPassword}
		result, err := validation.Validate(ctx, input, changePasswordRules(), s.exists)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if !result.Valid() {
			return nil, &domain.ValidationError{Fields: result.Errors}
		}

		if !VerifyPassword(in.OldPassword, user.PasswordDigest) {
			s.logger.Info().Int64("id", id).Msg("password change rejected: old password mismatch")
			return nil, domain.ErrWrongPassword
		}

		digest, err := HashPassword(in.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
		user.PasswordDigest = digest
	} else {
		input := map[string]string{"email": in.Email}
		result, err := validation.Validate(ctx, input, changeEmailRules(), s.exists)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if !result.Valid() {
			return nil, &domain.ValidationError{Fields: result.Errors}
		}
		user.Email = in.Email
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if err := s.cache.Invalidate(ctx, usersCollection, id); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("user cache invalidation failed")
	}

	s.logger.Info().Int64("id", id).Msg("user updated")
	return user, nil
}

// Delete removes the account and returns its last-known representation.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	if err := s.cache.Invalidate(ctx, usersCollection, id); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("user cache invalidation failed")
	}

	s.logger.Info().Int64("id", id).Msg("user deleted")
	return user, nil
}
