package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lluanbs/celestial-resort/internal/usecase"
)

// writeVerdict maps a use-case verdict onto the wire response. The body
// shape {success, message, data} is the API's stable contract.
func writeVerdict(c echo.Context, v usecase.Verdict) error {
	return c.JSON(v.Status, echo.Map{
		"success": v.Success,
		"message": v.Message,
		"data":    v.Data,
	})
}

// internalError is the generic response for unexpected repository
// faults; use cases never surface business failures this way.
func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"message": "Internal server error!",
		"data":    nil,
	})
}
