package ports

import (
	"context"

	"github.com/hrdesk/hr-api/internal/core/domain"
)

// EmployeeRepository defines the persistence operations for employee records.
// FindAll returns records ordered by creation time descending.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	Insert(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int64) error
}
