package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrdesk/hr-api/internal/api/response"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders errors
// escaping the handlers (router 404s, bind failures, panics caught by
// Recover) in the same {meta, data} envelope the handlers use. Unexpected
// errors are logged and surfaced with their raw message and a 500, matching
// the handlers' own unexpected-error path.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, response.Error(nil, fmt.Sprintf("%v", he.Message), he.Code))
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError,
			response.Error(nil, err.Error(), http.StatusInternalServerError))
	}
}
