// Package api contains the JSON HTTP handlers. Handlers translate
// requests into service calls and results into JSON; all domain errors
// pass through unmodified to the central error handler.
package api

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saga-books/saga/internal/domain"
)

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Invalid("api.params", fmt.Sprintf("Invalid ID in path: %s", raw))
	}
	return id, nil
}

// bindJSON decodes the request body into v.
func bindJSON(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return domain.Invalid("api.bind", "Invalid request body.")
	}
	return nil
}
