package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/middleware"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
)

type JobProfileHandler struct {
	profiles repositories.JobProfileRepository
}

func NewJobProfileHandler(profiles repositories.JobProfileRepository) *JobProfileHandler {
	return &JobProfileHandler{profiles: profiles}
}

// HandleList handles GET /api/v1/job-profiles. Candidates only see active
// profiles; recruiters see all of them.
func (h *JobProfileHandler) HandleList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	activeOnly := user.Role != models.RoleRecruiter

	profiles, err := h.profiles.List(activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(profiles)
}

// HandleGet handles GET /api/v1/job-profiles/:id
func (h *JobProfileHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Validation("invalid job profile id")
	}

	profile, err := h.profiles.FindByID(id)
	if err != nil {
		return err
	}
	if !profile.Active && middleware.CurrentUser(c).Role != models.RoleRecruiter {
		return apperrors.NotFound("job profile not found")
	}
	return c.JSON(profile)
}

// HandleCreate handles POST /api/v1/job-profiles
func (h *JobProfileHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.JobProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.Validation("title is required")
	}

	profile := &models.JobProfile{
		ID:                 uuid.New(),
		Title:              strings.TrimSpace(req.Title),
		Description:        req.Description,
		TechnicalSkills:    req.TechnicalSkills,
		SoftSkills:         req.SoftSkills,
		ExperienceReq:      req.ExperienceReq,
		EvaluationFocus:    req.EvaluationFocus,
		CustomInstructions: req.CustomInstructions,
		Active:             true,
	}
	if req.Active != nil {
		profile.Active = *req.Active
	}

	if err := h.profiles.Create(profile); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// HandleUpdate handles PUT /api/v1/job-profiles/:id
func (h *JobProfileHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Validation("invalid job profile id")
	}

	var req models.JobProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.Validation("title is required")
	}

	profile, err := h.profiles.FindByID(id)
	if err != nil {
		return err
	}

	profile.Title = strings.TrimSpace(req.Title)
	profile.Description = req.Description
	profile.TechnicalSkills = req.TechnicalSkills
	profile.SoftSkills = req.SoftSkills
	profile.ExperienceReq = req.ExperienceReq
	profile.EvaluationFocus = req.EvaluationFocus
	profile.CustomInstructions = req.CustomInstructions
	if req.Active != nil {
		profile.Active = *req.Active
	}

	if err := h.profiles.Update(profile); err != nil {
		return err
	}
	return c.JSON(profile)
}

// HandleDelete handles DELETE /api/v1/job-profiles/:id
func (h *JobProfileHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Validation("invalid job profile id")
	}

	if err := h.profiles.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "job profile deleted"})
}
