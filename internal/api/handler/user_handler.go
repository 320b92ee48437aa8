package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-api/internal/api/metrics"
	"github.com/hrdesk/hr-api/internal/api/response"
	"github.com/hrdesk/hr-api/internal/core/domain"
	"github.com/hrdesk/hr-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users. An empty store is a business-level failure,
// not an empty success list.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoUsers) {
			return response.Fail(c, nil, "Belum ada data pengguna", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, users, "Data pengguna berhasil didapatkan")
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.Fail(c, nil, "Data pengguna tidak ditemukan", http.StatusBadRequest)
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.Fail(c, nil, "Data pengguna tidak ditemukan", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, user, "Data pengguna berhasil ditemukan")
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, nil, "Data yang anda masukkan tidak sesuai", http.StatusBadRequest)
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
			return response.Fail(c, ve.Fields, "Data yang anda masukkan tidak sesuai", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, user, "Data pengguna berhasil ditambahkan")
}

// Update handles PUT /api/users/:id. Supplying old_password or new_password
// switches the operation to a password change; otherwise the email is
// updated.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.Fail(c, nil, "Data pengguna tidak ditemukan", http.StatusBadRequest)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, nil, "Data yang anda masukkan tidak sesuai", http.StatusBadRequest)
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Email:       req.Email,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Fail(c, nil, "Data pengguna tidak ditemukan", http.StatusBadRequest)
		case errors.As(err, &ve):
			metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
			return response.Fail(c, ve.Fields, "Data yang anda masukkan tidak sesuai", http.StatusBadRequest)
		case errors.Is(err, domain.ErrWrongPassword):
			return response.Fail(c, nil, "Password anda salah", http.StatusBadRequest)
		default:
			return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
		}
	}
	return response.OK(c, user, "Data pengguna berhasil diperbarui")
}

// Delete handles DELETE /api/users/:id. The envelope returns the removed
// record's last-known representation.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.Fail(c, nil, "Data pengguna tidak ditemukan", http.StatusBadRequest)
	}

	user, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.Fail(c, nil, "Data pengguna tidak ditemukan", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, user, "Data pengguna berhasil dihapus")
}
