// Package response renders the uniform {meta, data} envelope every endpoint
// returns. Builders return a fresh value per call; nothing here is shared
// across requests.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Meta struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Envelope struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

// Success builds a 200 success envelope.
func Success(data any, message string) Envelope {
	return Envelope{
		Meta: Meta{Code: http.StatusOK, Status: "success", Message: message},
		Data: data,
	}
}

// Error builds an error envelope with the given code. Data carries optional
// detail such as a field→message map.
func Error(data any, message string, code int) Envelope {
	return Envelope{
		Meta: Meta{Code: code, Status: "error", Message: message},
		Data: data,
	}
}

// OK writes a success envelope to the response.
func OK(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, Success(data, message))
}

// Fail writes an error envelope to the response, mirroring the envelope code
// in the HTTP status.
func Fail(c echo.Context, data any, message string, code int) error {
	return c.JSON(code, Error(data, message, code))
}
