package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hrdesk/hr-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories and collaborators shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	findN  int // FindByID call count
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.findN++
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
	findN     int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[int64]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.findN++
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) FindAll(_ context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *stubEmployeeRepo) Insert(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.nextID++
	stored := cloneEmployee(employee)
	stored.ID = r.nextID
	r.employees[stored.ID] = stored
	return cloneEmployee(stored), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := r.employees[employee.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[employee.ID] = cloneEmployee(employee)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// stubChecker mirrors the Mongo ExistenceChecker over the stub repositories.
type stubChecker struct {
	users     *stubUserRepo
	employees *stubEmployeeRepo
}

func (c *stubChecker) ExistsByField(_ context.Context, collection, field, value string, excludeID int64) (bool, error) {
	if field != "email" {
		return false, nil
	}
	switch collection {
	case "users":
		for _, u := range c.users.users {
			if u.Email == value && u.ID != excludeID {
				return true, nil
			}
		}
	case "employees":
		for _, e := range c.employees.employees {
			if e.Email == value && e.ID != excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

// memCache is an in-process RecordCache used to exercise the read-through path.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) key(collection string, id int64) string {
	return fmt.Sprintf("%s:%d", collection, id)
}

func (c *memCache) Get(_ context.Context, collection string, id int64, dest any) (bool, error) {
	raw, ok := c.entries[c.key(collection, id)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, collection string, id int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[c.key(collection, id)] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, collection string, id int64) error {
	delete(c.entries, c.key(collection, id))
	return nil
}
