package ports

import (
	"context"

	"github.com/hrdesk/hr-api/internal/core/domain"
)

type CreateUserInput struct {
	Email    string
	Password string
}

// UpdateUserInput drives the two update branches: when OldPassword or
// NewPassword is set the operation is a password change, otherwise only the
// email is updated.
type UpdateUserInput struct {
	Email       string
	OldPassword string
	NewPassword string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
