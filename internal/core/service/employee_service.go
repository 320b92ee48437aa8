package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-api/internal/core/domain"
	"github.com/hrdesk/hr-api/internal/core/ports"
	"github.com/hrdesk/hr-api/internal/core/validation"
)

const employeesCollection = "employees"

type EmployeeService struct {
	repo   ports.EmployeeRepository
	exists validation.ExistenceChecker
	cache  RecordCache
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, exists validation.ExistenceChecker, cache RecordCache, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, exists: exists, cache: cache, logger: logger}
}

// employeeRules builds the create/update rule set. Uniqueness of email is
// only enforced on create, mirroring the update form which keeps the address.
func employeeRules(withUnique bool) validation.RuleSet {
	emailRules := []validation.Rule{validation.Required{}, validation.ValidEmail{}}
	emailMessages := map[string]string{
		"required":    "Email is required",
		"valid_email": "Email is not valid",
	}
	if withUnique {
		emailRules = append(emailRules, validation.IsUnique{Collection: employeesCollection, Field: "email"})
		emailMessages["is_unique"] = "Email is already"
	}

	return validation.RuleSet{
		"name": {
			Rules: []validation.Rule{validation.Required{}, validation.AlphaSpace{}},
			Messages: map[string]string{
				"required":    "Name is required",
				"alpha_space": "Name cannot contain numbers",
			},
		},
		"email": {
			Rules:    emailRules,
			Messages: emailMessages,
		},
	}
}

// List returns all employees, newest first. An empty store is reported as
// domain.ErrNoEmployees rather than an empty slice.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, domain.ErrNoEmployees
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	var cached domain.Employee
	found, err := s.cache.Get(ctx, employeesCollection, id, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("employee cache read failed")
	} else if found {
		return &cached, nil
	}

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, employeesCollection, id, employee); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("employee cache write failed")
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
	input := map[string]string{"name": in.Name, "email": in.Email}
	result, err := validation.Validate(ctx, input, employeeRules(true), s.exists)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	if !result.Valid() {
		return nil, &domain.ValidationError{Fields: result.Errors}
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.logger.Info().Int64("id", created.ID).Str("email", created.Email).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input := map[string]string{"name": in.Name, "email": in.Email}
	result, err := validation.Validate(ctx, input, employeeRules(false), s.exists)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if !result.Valid() {
		return nil, &domain.ValidationError{Fields: result.Errors}
	}

	employee.Name = in.Name
	employee.Email = in.Email
	employee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	if err := s.cache.Invalidate(ctx, employeesCollection, id); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("employee cache invalidation failed")
	}

	s.logger.Info().Int64("id", id).Msg("employee updated")
	return employee, nil
}

// Delete removes the employee and returns its last-known representation.
func (s *EmployeeService) Delete(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete employee: %w", err)
	}

	if err := s.cache.Invalidate(ctx, employeesCollection, id); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("employee cache invalidation failed")
	}

	s.logger.Info().Int64("id", id).Msg("employee deleted")
	return employee, nil
}
