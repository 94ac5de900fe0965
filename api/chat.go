package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scribelabs/marketscribe/domain"
)

// ContinueChat handles follow-up turns against an existing session.
// POST /continue_chat
func (h *Handler) ContinueChat(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, "invalid request body")
	}

	if req.SessionID == "" {
		return errorJSON(c, "session_id is required")
	}

	reply, err := h.svc.Continue(ctx, &req)
	if err != nil {
		log.Printf("ERROR: chat continuation failed: %v", err)
		return errorJSON(c, userMessage(err))
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{Status: "success", Text: reply})
}
