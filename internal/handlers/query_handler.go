package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/services"
)

type QueryHandler struct {
	queries *services.QueryService
}

func NewQueryHandler(queries *services.QueryService) *QueryHandler {
	return &QueryHandler{queries: queries}
}

// HandleAsk handles POST /api/v1/query/ask
func (h *QueryHandler) HandleAsk(c *fiber.Ctx) error {
	var req models.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if strings.TrimSpace(req.Query) == "" {
		return apperrors.Validation("query is required")
	}

	format := req.Format
	if format == "" {
		format = "markdown"
	}

	response, err := h.queries.Ask(c.Context(), req.Query, req.Context)
	if err != nil {
		return err
	}
	return c.JSON(models.QueryResponse{Response: response, Format: format})
}
