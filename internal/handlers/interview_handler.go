package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/middleware"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
	"github.com/adititiwari16/Recruitbotai/internal/services"
)

type InterviewHandler struct {
	store      *repositories.Store
	interviews *services.InterviewService
}

func NewInterviewHandler(store *repositories.Store, interviews *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{store: store, interviews: interviews}
}

// HandleCreate handles POST /api/v1/interviews. It opens a session against
// an active job profile and immediately asks for the first question.
func (h *InterviewHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	profileID, err := uuid.Parse(req.JobProfileID)
	if err != nil {
		return apperrors.Validation("invalid job_profile_id")
	}
	if strings.TrimSpace(req.ExperienceLevel) == "" {
		return apperrors.Validation("experience_level is required")
	}

	profile, err := h.store.JobProfiles.FindByID(profileID)
	if err != nil {
		return err
	}
	if !profile.Active {
		return apperrors.Validation("job profile is not active")
	}

	interview := &models.Interview{
		ID:              uuid.New(),
		UserID:          middleware.CurrentUser(c).ID,
		JobProfileID:    profile.ID,
		ExperienceLevel: strings.TrimSpace(req.ExperienceLevel),
		Status:          models.InterviewPending,
	}
	if err := h.store.Interviews.Create(interview); err != nil {
		return err
	}

	result, err := h.interviews.Advance(c.Context(), interview.ID, "")
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"interview": interview,
		"question":  result.Question,
	})
}

// HandleChat handles POST /api/v1/interviews/:id/chat. Each call answers
// the open question and returns the next one, until the cap is reached.
func (h *InterviewHandler) HandleChat(c *fiber.Ctx) error {
	interview, err := h.loadAccessible(c)
	if err != nil {
		return err
	}

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	result, err := h.interviews.Advance(c.Context(), interview.ID, req.Message)
	if err != nil {
		return err
	}

	resp := models.ChatResponse{
		Question: result.Question,
		Message:  result.Message,
		Done:     result.Done,
	}
	if result.Evaluation != nil {
		resp.Evaluation = result.Evaluation
	}
	return c.JSON(resp)
}

// HandleComplete handles POST /api/v1/interviews/:id/complete
func (h *InterviewHandler) HandleComplete(c *fiber.Ctx) error {
	interview, err := h.loadAccessible(c)
	if err != nil {
		return err
	}

	completed, err := h.interviews.Finalize(c.Context(), interview.ID)
	if err != nil {
		return err
	}
	return c.JSON(completed)
}

// HandleGet handles GET /api/v1/interviews/:id
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	interview, err := h.loadAccessible(c)
	if err != nil {
		return err
	}

	questions, err := h.store.Questions.FindByInterviewID(interview.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"interview": interview,
		"questions": questions,
	})
}

// HandleList handles GET /api/v1/interviews. Candidates get their own
// sessions, recruiters get all of them.
func (h *InterviewHandler) HandleList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var (
		interviews []models.Interview
		err        error
	)
	if user.Role == models.RoleRecruiter {
		interviews, err = h.store.Interviews.FindAll()
	} else {
		interviews, err = h.store.Interviews.FindByUserID(user.ID)
	}
	if err != nil {
		return err
	}
	return c.JSON(interviews)
}

func (h *InterviewHandler) loadAccessible(c *fiber.Ctx) (*models.Interview, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, apperrors.Validation("invalid interview id")
	}

	interview, err := h.store.Interviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !middleware.CanAccessInterview(middleware.CurrentUser(c), interview) {
		return nil, apperrors.Authorization("you do not have access to this interview")
	}
	return interview, nil
}
