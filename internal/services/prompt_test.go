package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/adititiwari16/Recruitbotai/internal/models"
)

func testProfile() *models.JobProfile {
	return &models.JobProfile{
		ID:              uuid.New(),
		Title:           "Backend Engineer",
		Description:     "Own backend services end to end.",
		TechnicalSkills: []string{"Go", "Postgres"},
		SoftSkills:      []string{"Communication"},
		ExperienceReq:   "3+ years",
		EvaluationFocus: "practical depth",
	}
}

func TestBuildQuestionPromptFirstQuestion(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildQuestionPrompt(testProfile(), "mid-level", 0, nil)
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Go, Postgres")
	assert.Contains(t, prompt, "question 1 of 10")
	assert.Contains(t, prompt, "multiple-choice")
	assert.NotContains(t, prompt, "previous question")
}

func TestBuildQuestionPromptTypeInstruction(t *testing.T) {
	pb := NewPromptBuilder()
	profile := testProfile()

	assert.Contains(t, pb.BuildQuestionPrompt(profile, "junior", 3, nil), "multiple-choice")
	assert.Contains(t, pb.BuildQuestionPrompt(profile, "junior", 4, nil), "conceptual")
	assert.Contains(t, pb.BuildQuestionPrompt(profile, "junior", 7, nil), "coding")
}

func TestBuildQuestionPromptDifficultyAdvisory(t *testing.T) {
	pb := NewPromptBuilder()
	answer := "a thorough answer"

	prev := &models.Question{Text: "What is a channel?", Answer: &answer, Score: 8}
	prompt := pb.BuildQuestionPrompt(testProfile(), "senior", 1, prev)
	assert.Contains(t, prompt, "What is a channel?")
	assert.Contains(t, prompt, "harder")

	prev.Score = 5
	assert.Contains(t, pb.BuildQuestionPrompt(testProfile(), "senior", 1, prev), "same difficulty")

	prev.Score = 2
	assert.Contains(t, pb.BuildQuestionPrompt(testProfile(), "senior", 1, prev), "easier")
}

func TestBuildQuestionPromptSkipsUnansweredPrev(t *testing.T) {
	pb := NewPromptBuilder()

	prev := &models.Question{Text: "Pending question"}
	prompt := pb.BuildQuestionPrompt(testProfile(), "junior", 1, prev)
	assert.NotContains(t, prompt, "Pending question")
}

func TestBuildEvaluationPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildEvaluationPrompt("What is a mutex?", "A lock.", "Backend Engineer", "5 years of")
	assert.Contains(t, prompt, "What is a mutex?")
	assert.Contains(t, prompt, "A lock.")
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, `"score"`)
	assert.Contains(t, prompt, `"areas_for_improvement"`)
}

func TestBuildReportPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	answer := "my answer"
	user := &models.User{Name: "Ada"}
	questions := []models.Question{
		{Order: 1, Text: "Q one", Answer: &answer, Score: 7},
		{Order: 2, Text: "Q two", Answer: &answer, Score: 4},
	}

	prompt := pb.BuildReportPrompt(user, testProfile(), questions)
	assert.Contains(t, prompt, "Ada")
	assert.Contains(t, prompt, "Q1: Q one")
	assert.Contains(t, prompt, "Q2: Q two")
	assert.Contains(t, prompt, "Score: 7.0/10")
	assert.Contains(t, prompt, "Strengths")
	assert.Contains(t, prompt, "Areas for Improvement")
	assert.Contains(t, prompt, "Recommendation")
}
