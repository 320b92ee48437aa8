package ports

import (
	"context"

	"github.com/hrdesk/hr-api/internal/core/domain"
)

type CreateEmployeeInput struct {
	Name  string
	Email string
}

type UpdateEmployeeInput struct {
	Name  string
	Email string
}

type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id int64, in UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) (*domain.Employee, error)
}
