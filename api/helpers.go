package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scribelabs/marketscribe/domain"
)

// errorJSON writes the uniform error shape. Every failure maps to HTTP 400;
// nothing that happens inside a request is fatal to the process.
func errorJSON(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Status: "error", Message: message})
}

// userMessage maps a pipeline error to the message shown to the caller.
func userMessage(err error) string {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return "Invalid or expired session_id."
	}
	return err.Error()
}
