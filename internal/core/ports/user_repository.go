package ports

import (
	"context"

	"github.com/hrdesk/hr-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
// FindAll returns records ordered by creation time descending.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
