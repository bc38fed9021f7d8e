package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
)

// MaxQuestions caps every interview session. Once reached, Advance emits a
// terminal message instead of a new question.
const MaxQuestions = 10

const questionCategory = "Technical"

// Result classification thresholds, fixed by product decision.
const (
	passThreshold       = 70.0
	borderlineThreshold = 50.0
)

const (
	terminalMessage = "You have answered all interview questions. Submit the interview to receive your evaluation report."
	retryMessage    = "The interview assistant is temporarily unavailable. Your answer was saved; please try again to receive the next question."
)

// evalErrorFeedback marks answers whose evaluation could not be obtained.
// The zero score that accompanies it is a local recovery, not a verdict.
const evalErrorFeedback = `{"error":"evaluation_failed"}`

// AdvanceResult is one turn of the interview conversation.
type AdvanceResult struct {
	Question   *models.Question
	Message    string
	Done       bool
	Evaluation *AnswerEvaluation
}

type InterviewService struct {
	store     *repositories.Store
	tx        repositories.Transactor
	generator Generator
	prompts   *PromptBuilder
	logger    *zap.Logger
}

func NewInterviewService(
	store *repositories.Store,
	tx repositories.Transactor,
	generator Generator,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		store:     store,
		tx:        tx,
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger,
	}
}

// Advance runs one turn of the interview: it records the incoming message as
// the answer to the open question (if any), evaluates it, and then either
// emits the next question or the terminal message once the cap is reached.
func (s *InterviewService) Advance(ctx context.Context, interviewID uuid.UUID, message string) (*AdvanceResult, error) {
	var result *AdvanceResult

	err := s.tx.WithInterviewLock(ctx, interviewID, func(store *repositories.Store) error {
		interview, err := store.Interviews.FindByID(interviewID)
		if err != nil {
			return err
		}
		if interview.Status == models.InterviewCompleted {
			return apperrors.Validation("interview is already completed")
		}

		profile, err := store.JobProfiles.FindByID(interview.JobProfileID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.NotFound("job profile not found")
			}
			return err
		}

		user, err := store.Users.FindByID(interview.UserID)
		if err != nil {
			return err
		}

		questions, err := store.Questions.FindByInterviewID(interviewID)
		if err != nil {
			return err
		}

		// The open question, when present, is always the highest-order one.
		var evaluation *AnswerEvaluation
		answered := false
		if len(questions) > 0 && !questions[len(questions)-1].Answered() {
			open := &questions[len(questions)-1]
			if strings.TrimSpace(message) == "" {
				return apperrors.Validation("message is required")
			}
			evaluation, err = s.recordAnswer(ctx, store, interview, open, message, profile, user)
			if err != nil {
				return err
			}
			answered = true
		}

		if len(questions) >= MaxQuestions {
			result = &AdvanceResult{Message: terminalMessage, Done: true, Evaluation: evaluation}
			return nil
		}

		var prev *models.Question
		if len(questions) > 0 {
			prev = &questions[len(questions)-1]
		}

		text, err := s.generateQuestion(ctx, profile, interview.ExperienceLevel, len(questions), prev)
		if err != nil {
			s.logger.Error("Failed to generate question",
				zap.String("interviewId", interviewID.String()),
				zap.Int("position", len(questions)),
				zap.Error(err))
			if answered {
				// The answer is already recorded; surface a retryable
				// message instead of rolling the whole turn back.
				result = &AdvanceResult{Message: retryMessage, Evaluation: evaluation}
				return nil
			}
			return apperrors.Collaborator("interview assistant temporarily unavailable, please retry", err)
		}

		question := &models.Question{
			InterviewID: interviewID,
			Order:       len(questions) + 1,
			Text:        text,
			Category:    questionCategory,
			Type:        models.TypeForPosition(len(questions)),
		}
		if err := store.Questions.Create(question); err != nil {
			return err
		}

		s.logger.Info("Question created",
			zap.String("interviewId", interviewID.String()),
			zap.Int("order", question.Order),
			zap.String("type", string(question.Type)))

		result = &AdvanceResult{Question: question, Evaluation: evaluation}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// recordAnswer stores the answer on the open question and persists the
// collaborator's evaluation. Collaborator failures are absorbed: a transport
// failure leaves a zero score with an error marker, an unparseable payload a
// middle score with a parsing notice. Neither aborts the turn.
func (s *InterviewService) recordAnswer(
	ctx context.Context,
	store *repositories.Store,
	interview *models.Interview,
	question *models.Question,
	answer string,
	profile *models.JobProfile,
	user *models.User,
) (*AnswerEvaluation, error) {
	now := time.Now()
	question.Answer = &answer
	question.AnsweredAt = &now

	experience := interview.ExperienceLevel
	if user.Experience != nil {
		experience = fmt.Sprintf("%d years of", *user.Experience)
	}

	prompt := s.prompts.BuildEvaluationPrompt(question.Text, answer, profile.Title, experience)

	var evaluation *AnswerEvaluation
	raw, err := s.generator.Generate(ctx, prompt, "")
	switch {
	case err != nil:
		s.logger.Warn("Answer evaluation unavailable",
			zap.String("interviewId", interview.ID.String()),
			zap.Int("order", question.Order),
			zap.Error(err))
		question.Score = 0
		question.Feedback = evalErrorFeedback
	default:
		parsed, ok := ParseEvaluation(raw)
		if !ok {
			parsed = fallbackEvaluation()
		}
		parsed.Score = clampScore(parsed.Score, 0, 10)
		feedback, _ := json.Marshal(parsed)
		question.Score = parsed.Score
		question.Feedback = string(feedback)
		evaluation = parsed
	}

	if err := store.Questions.Update(question); err != nil {
		return nil, err
	}

	if interview.Status == models.InterviewPending {
		if err := store.Interviews.UpdateStatus(interview.ID, models.InterviewInProgress); err != nil {
			return nil, err
		}
		interview.Status = models.InterviewInProgress
	}

	return evaluation, nil
}

func (s *InterviewService) generateQuestion(
	ctx context.Context,
	profile *models.JobProfile,
	experienceLevel string,
	position int,
	prev *models.Question,
) (string, error) {
	prompt := s.prompts.BuildQuestionPrompt(profile, experienceLevel, position, prev)

	raw, err := s.generator.Generate(ctx, prompt, "")
	if err != nil {
		return "", err
	}

	parsed, err := ParseQuestions(raw, 1)
	if err != nil {
		return "", err
	}
	return parsed[0], nil
}

// Finalize closes the interview: it averages the per-question scores,
// classifies the verdict, requests the long-form report and persists the
// outcome in one atomic update. Calling it on a completed interview returns
// the stored outcome unchanged.
func (s *InterviewService) Finalize(ctx context.Context, interviewID uuid.UUID) (*models.Interview, error) {
	var out *models.Interview

	err := s.tx.WithInterviewLock(ctx, interviewID, func(store *repositories.Store) error {
		interview, err := store.Interviews.FindByID(interviewID)
		if err != nil {
			return err
		}
		if interview.Status == models.InterviewCompleted {
			out = interview
			return nil
		}

		user, err := store.Users.FindByID(interview.UserID)
		if err != nil {
			return err
		}

		profile, err := store.JobProfiles.FindByID(interview.JobProfileID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.NotFound("job profile not found")
			}
			return err
		}

		questions, err := store.Questions.FindByInterviewID(interviewID)
		if err != nil {
			return err
		}
		for i := range questions {
			if !questions[i].Answered() {
				return apperrors.Validation("interview is incomplete: question %d has not been answered", questions[i].Order)
			}
		}

		score := averageScore(questions)
		outcome := &repositories.CompletionData{
			Score:  score,
			Result: classify(score),
		}

		prompt := s.prompts.BuildReportPrompt(user, profile, questions)
		raw, genErr := s.generator.Generate(ctx, prompt, "")
		if genErr != nil {
			s.logger.Error("Report generation failed",
				zap.String("interviewId", interviewID.String()),
				zap.Error(genErr))
			// Close the session with a distinct, retryable error result so
			// a failed report is never mistaken for a real evaluation.
			outcome.Score = 0
			outcome.Result = models.ResultError
			outcome.Feedback = genErr.Error()
			outcome.Report = genErr.Error()
		} else {
			summary, _ := json.Marshal(ExtractFeedbackSummary(raw))
			outcome.Feedback = string(summary)
			outcome.Report = raw
		}

		if err := store.Interviews.Complete(interviewID, outcome); err != nil {
			return err
		}

		out, err = store.Interviews.FindByID(interviewID)
		if err != nil {
			return err
		}

		s.logger.Info("Interview completed",
			zap.String("interviewId", interviewID.String()),
			zap.Float64("score", out.Score),
			zap.String("result", string(out.Result)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func fallbackEvaluation() *AnswerEvaluation {
	return &AnswerEvaluation{
		Score:               5,
		Strengths:           "Response parsing error - please try again",
		AreasForImprovement: "Response parsing error - please try again",
		OverallFeedback:     "The system was unable to properly evaluate your answer. Please try again.",
	}
}

func averageScore(questions []models.Question) float64 {
	if len(questions) == 0 {
		return 0
	}
	total := 0.0
	for i := range questions {
		total += questions[i].Score
	}
	return clampScore(total/float64(len(questions))*10, 0, 100)
}

func classify(score float64) models.InterviewResult {
	switch {
	case score >= passThreshold:
		return models.ResultPass
	case score >= borderlineThreshold:
		return models.ResultBorderline
	default:
		return models.ResultFail
	}
}

func clampScore(score, min, max float64) float64 {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}
