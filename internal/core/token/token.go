// Package token issues and verifies the stateless bearer tokens used by the
// API. Verification needs no server-side session state; the TTL bounds how
// long a leaked token stays usable since there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "hr-api"
	audience = "hr-api"
	subject  = "user authentication"
)

var ErrMissingSecret = errors.New("token: signing secret is not configured")
var ErrTokenInvalid = errors.New("token: invalid token")
var ErrTokenExpired = errors.New("token: token expired")

// Claims is the full claim set embedded in every issued token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a process-wide secret and TTL,
// both fixed at startup.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService fails fast when the secret is empty so a misconfigured process
// never issues unsigned-in-practice tokens. A non-positive ttl falls back to
// 24 hours.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue builds the claim set for email with issued_at = now and
// expires_at = now + TTL, and returns the signed token.
func (s *Service) Issue(email string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and checks the token signature and validity window. It
// returns ErrTokenExpired past expires_at and ErrTokenInvalid for any other
// signature or structure problem.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// TTL exposes the configured time-to-live.
func (s *Service) TTL() time.Duration { return s.ttl }
