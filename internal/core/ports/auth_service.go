package ports

import (
	"context"

	"github.com/hrdesk/hr-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns a signed bearer token together
	// with the matched user. A wrong password and an unknown email both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
