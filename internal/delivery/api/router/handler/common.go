package handler

import (
	"net/http"
	"strconv"

	"geekstore/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

func invalidID(c echo.Context) error {
	return response.InvalidID(c)
}

func invalidInput(c echo.Context) error {
	return response.InvalidInput(c, "Cuerpo de la solicitud inválido")
}

func unauthorized(c echo.Context) error {
	return response.Unauthenticated(c)
}
