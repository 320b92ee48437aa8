package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-api/internal/api/metrics"
	"github.com/hrdesk/hr-api/internal/api/response"
	"github.com/hrdesk/hr-api/internal/core/token"
)

// EmailContextKey is where the filter stores the authenticated email for
// downstream handlers.
const EmailContextKey = "email"

// Auth is the filter in front of every protected route. Requests without a
// valid, unexpired bearer token are rejected with a 401 envelope and never
// reach a handler; there are no retries, the client must log in again.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return response.Fail(c, nil, "Token tidak ditemukan", http.StatusUnauthorized)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return response.Fail(c, nil, "Token tidak valid", http.StatusUnauthorized)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return response.Fail(c, nil, "Token sudah kadaluarsa", http.StatusUnauthorized)
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return response.Fail(c, nil, "Token tidak valid", http.StatusUnauthorized)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(EmailContextKey, claims.Email)

			return next(c)
		}
	}
}
