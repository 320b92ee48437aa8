package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-api/internal/core/domain"
	"github.com/hrdesk/hr-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	return s.deleteFn(ctx, id)
}

func TestUserHandler_List_Empty(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, domain.ErrNoUsers
		},
	})

	c, rec := getRequest(e, "/api/users")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty store, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Meta.Message != "Belum ada data pengguna" {
		t.Fatalf("unexpected message: %q", env.Meta.Message)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := echo.New()
	now := time.Now().UTC()
	handler := NewUserHandler(&stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Email != "ada@x.com" || in.Password != "rahasia123" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID: 1, Email: in.Email, PasswordDigest: "bcrypt-digest",
				CreatedAt: now, UpdatedAt: now,
			}, nil
		},
	})

	c, rec := postJSON(e, "/api/users", `{"email":"ada@x.com","password":"rahasia123"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Meta.Message != "Data pengguna berhasil ditambahkan" {
		t.Fatalf("unexpected message: %q", env.Meta.Message)
	}

	var data map[string]any
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data["email"] != "ada@x.com" {
		t.Fatalf("unexpected data: %+v", data)
	}
	if _, leaked := data["password_digest"]; leaked {
		t.Fatalf("digest must never be serialized")
	}
}

func TestUserHandler_Update_WrongOldPassword(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrWrongPassword
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/users/1",
		strings.NewReader(`{"old_password":"salah","new_password":"barubanget1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Meta.Message != "Password anda salah" {
		t.Fatalf("unexpected message: %q", env.Meta.Message)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/users/42",
		strings.NewReader(`{"email":"ada@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Meta.Message != "Data pengguna tidak ditemukan" {
		t.Fatalf("unexpected message: %q", env.Meta.Message)
	}
}

func TestUserHandler_Get_Success(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.User{ID: 7, Email: "ada@x.com"}, nil
		},
	})

	c, rec := getRequest(e, "/api/users/7")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Meta.Message != "Data pengguna berhasil ditemukan" {
		t.Fatalf("unexpected message: %q", env.Meta.Message)
	}
}
