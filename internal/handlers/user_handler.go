package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/middleware"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
)

type UserHandler struct {
	users repositories.UserRepository
}

func NewUserHandler(users repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// HandleMe handles GET /api/v1/users/me
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// HandleUpdateMe handles PUT /api/v1/users/me
func (h *UserHandler) HandleUpdateMe(c *fiber.Ctx) error {
	var req models.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	user := middleware.CurrentUser(c)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return apperrors.Validation("name cannot be empty")
		}
		user.Name = name
	}
	if req.Age != nil {
		if *req.Age < 0 {
			return apperrors.Validation("age cannot be negative")
		}
		user.Age = req.Age
	}
	if req.Experience != nil {
		if *req.Experience < 0 {
			return apperrors.Validation("experience cannot be negative")
		}
		user.Experience = req.Experience
	}
	if req.JobTitle != nil {
		user.JobTitle = req.JobTitle
	}

	if err := h.users.Update(user); err != nil {
		return err
	}
	return c.JSON(user)
}
