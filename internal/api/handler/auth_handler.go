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

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/login. On success the envelope data carries the
// signed token and the matched user; credential mismatches get one generic
// message regardless of which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, nil, "Data yang anda masukkan tidak sesuai", http.StatusBadRequest)
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			metrics.LoginAttemptsTotal.WithLabelValues("validation_error").Inc()
			metrics.ValidationFailuresTotal.WithLabelValues("login").Inc()
			return response.Fail(c, ve.Fields, "Data yang anda masukkan tidak sesuai", http.StatusBadRequest)
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return response.Fail(c, nil, "Email dan password salah", http.StatusBadRequest)
		default:
			return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
		}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return response.OK(c, loginResponse{Token: signed, User: user}, "Login berhasil")
}
