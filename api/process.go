package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scribelabs/marketscribe/domain"
)

// Process handles article generation requests.
// POST /process
func (h *Handler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ProcessRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, "invalid request body")
	}

	if req.InputType != domain.InputTypeURL && req.InputType != domain.InputTypeSearch {
		return errorJSON(c, `input_type must be "url" or "search"`)
	}
	if strings.TrimSpace(req.InputContent) == "" {
		return errorJSON(c, "input_content is required")
	}

	result, err := h.svc.Generate(ctx, &req)
	if err != nil {
		log.Printf("ERROR: generation failed: %v", err)
		return errorJSON(c, userMessage(err))
	}

	return c.JSON(http.StatusOK, domain.ProcessResponse{
		Status:    "success",
		Text:      result.Text,
		SessionID: result.SessionID,
	})
}
