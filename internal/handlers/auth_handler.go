package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/middleware"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
)

const minPasswordLength = 8

type AuthHandler struct {
	users repositories.UserRepository
	auth  *middleware.SessionAuth
}

func NewAuthHandler(users repositories.UserRepository, auth *middleware.SessionAuth) *AuthHandler {
	return &AuthHandler{users: users, auth: auth}
}

// HandleRegister handles POST /api/v1/auth/register
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return apperrors.Validation("name is required")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return apperrors.Validation("a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return apperrors.Validation("password must be at least %d characters", minPasswordLength)
	}

	role := models.RoleCandidate
	switch req.Role {
	case "", string(models.RoleCandidate):
	case string(models.RoleRecruiter):
		role = models.RoleRecruiter
	default:
		return apperrors.Validation("role must be candidate or recruiter")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Persistence("failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.users.Create(user); err != nil {
		return err
	}

	if err := h.auth.Login(c, user.ID); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin handles POST /api/v1/auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return apperrors.Validation("email and password are required")
	}

	user, err := h.users.FindByEmail(email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return apperrors.Authorization("invalid email or password")
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return apperrors.Authorization("invalid email or password")
	}

	if err := h.auth.Login(c, user.ID); err != nil {
		return err
	}

	return c.JSON(user)
}

// HandleLogout handles POST /api/v1/auth/logout
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
