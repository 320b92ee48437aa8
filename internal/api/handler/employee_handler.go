package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/hr-api/internal/api/metrics"
	"github.com/hrdesk/hr-api/internal/api/response"
	"github.com/hrdesk/hr-api/internal/core/domain"
	"github.com/hrdesk/hr-api/internal/core/ports"
)

type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// pathID parses the numeric :id path parameter. A non-numeric id behaves
// like a lookup miss, so callers report it with their not-found message.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List handles GET /api/employees. An empty store is a business-level
// failure, not an empty success list.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoEmployees) {
			return response.Fail(c, nil, "Belum ada data karyawan", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, employees, "Data karyawan berhasil didapatkan")
}

// Get handles GET /api/employees/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.Fail(c, nil, "Data karyawan tidak ditemukan", http.StatusBadRequest)
	}

	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return response.Fail(c, nil, "Data karyawan tidak ditemukan", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, employee, "Data karyawan berhasil ditemukan")
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, nil, "Gagal menambahkan data karyawan", http.StatusBadRequest)
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("employee").Inc()
			return response.Fail(c, ve.Fields, "Gagal menambahkan data karyawan", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, employee, "Data karyawan berhasil ditambahkan")
}

// Update handles PUT /api/employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.Fail(c, nil, "Data karyawan tidak ditemukan", http.StatusBadRequest)
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, nil, "Gagal mengubah data karyawan", http.StatusBadRequest)
	}

	employee, err := h.service.Update(c.Request().Context(), id, ports.UpdateEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			return response.Fail(c, nil, "Data karyawan tidak ditemukan", http.StatusBadRequest)
		case errors.As(err, &ve):
			metrics.ValidationFailuresTotal.WithLabelValues("employee").Inc()
			return response.Fail(c, ve.Fields, "Gagal mengubah data karyawan", http.StatusBadRequest)
		default:
			return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
		}
	}
	return response.OK(c, employee, "Data karyawan berhasil diubah")
}

// Delete handles DELETE /api/employees/:id. The envelope returns the removed
// record's last-known representation.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.Fail(c, nil, "Data karyawan tidak ditemukan", http.StatusBadRequest)
	}

	employee, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return response.Fail(c, nil, "Data karyawan tidak ditemukan", http.StatusBadRequest)
		}
		return response.Fail(c, nil, err.Error(), http.StatusInternalServerError)
	}
	return response.OK(c, employee, "Data karyawan berhasil dihapus")
}
