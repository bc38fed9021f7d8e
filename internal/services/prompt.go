package services

import (
	"fmt"
	"strings"

	"github.com/adititiwari16/Recruitbotai/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for the next interview question.
// position is zero-based; prev is nil for the first question.
func (pb *PromptBuilder) BuildQuestionPrompt(profile *models.JobProfile, experienceLevel string, position int, prev *models.Question) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are RecruitBot, an AI-powered interview assistant conducting a mock interview for a %s position.

JOB DESCRIPTION:
%s

REQUIRED TECHNICAL SKILLS: %s
REQUIRED SOFT SKILLS: %s
EXPERIENCE REQUIREMENT: %s
EVALUATION FOCUS: %s
`,
		profile.Title,
		profile.Description,
		strings.Join(profile.TechnicalSkills, ", "),
		strings.Join(profile.SoftSkills, ", "),
		profile.ExperienceReq,
		profile.EvaluationFocus,
	)

	if profile.CustomInstructions != "" {
		fmt.Fprintf(&sb, "ADDITIONAL INSTRUCTIONS: %s\n", profile.CustomInstructions)
	}

	fmt.Fprintf(&sb, "\nThe candidate's experience level is %s. This is question %d of 10.\n", experienceLevel, position+1)

	switch models.TypeForPosition(position) {
	case models.QuestionMCQ:
		sb.WriteString("Ask a multiple-choice question with four options labelled A-D.\n")
	case models.QuestionConcept:
		sb.WriteString("Ask a conceptual question that probes understanding, not recall.\n")
	default:
		sb.WriteString("Ask a short coding exercise the candidate can answer in text.\n")
	}

	if prev != nil && prev.Answered() {
		fmt.Fprintf(&sb, `
The previous question and answer were:
Q: %s
A: %s

%s
`, prev.Text, *prev.Answer, difficultyAdvisory(prev.Score))
	}

	sb.WriteString("\nReturn ONLY the question text, with no preamble.")

	return sb.String()
}

// difficultyAdvisory steers question difficulty based on how the previous
// answer scored. Advisory text only; the collaborator decides what to ask.
func difficultyAdvisory(prevScore float64) string {
	switch {
	case prevScore >= 7:
		return "The candidate answered well. Make this question harder than the previous one."
	case prevScore >= 4:
		return "The candidate answered partially. Keep this question at the same difficulty."
	default:
		return "The candidate struggled. Make this question easier than the previous one."
	}
}

// BuildEvaluationPrompt creates the prompt for scoring a single answer.
func (pb *PromptBuilder) BuildEvaluationPrompt(question, answer, role, experience string) string {
	return fmt.Sprintf(`You are RecruitBot, an AI-powered interview evaluator. Evaluate the following answer for a candidate applying for a %s position with %s experience.

Question: %s

Candidate Answer: %s

Provide a detailed evaluation with the following:
1. Score (0-10)
2. Strengths
3. Areas for improvement
4. Additional insights
5. Overall feedback

Return your response in the following JSON format:
{
  "score": <0-10>,
  "strengths": "<what the candidate did well>",
  "areas_for_improvement": "<where the answer fell short>",
  "additional_insights": "<anything else worth noting>",
  "overall_feedback": "<2-3 sentence summary>"
}`, role, experience, question, answer)
}

// BuildReportPrompt creates the prompt for the final evaluation report.
func (pb *PromptBuilder) BuildReportPrompt(user *models.User, profile *models.JobProfile, questions []models.Question) string {
	var transcript strings.Builder
	for i, q := range questions {
		answer := ""
		if q.Answer != nil {
			answer = *q.Answer
		}
		fmt.Fprintf(&transcript, "Q%d: %s\n", i+1, q.Text)
		fmt.Fprintf(&transcript, "A%d: %s\n", i+1, answer)
		fmt.Fprintf(&transcript, "Score: %.1f/10\n\n", q.Score)
	}

	age := "unknown"
	if user.Age != nil {
		age = fmt.Sprintf("%d", *user.Age)
	}

	return fmt.Sprintf(`You are RecruitBot, an AI-powered interview evaluator. Based on the candidate's responses to the following questions, provide a comprehensive evaluation for a %s position.

JOB DESCRIPTION:
%s

REQUIRED TECHNICAL SKILLS: %s
REQUIRED SOFT SKILLS: %s
EXPERIENCE REQUIREMENT: %s
EVALUATION FOCUS: %s

Candidate: %s, %s years old, %d years of experience

Responses:
%s
Provide a final evaluation report in markdown with exactly these sections, in this order:
1. Strengths
2. Areas for Improvement
3. Recommendation`,
		profile.Title,
		profile.Description,
		strings.Join(profile.TechnicalSkills, ", "),
		strings.Join(profile.SoftSkills, ", "),
		profile.ExperienceReq,
		profile.EvaluationFocus,
		user.Name,
		age,
		user.ExperienceYears(),
		transcript.String(),
	)
}

// BuildQueryPrompt creates the prompt for the freeform assistant endpoint.
func (pb *PromptBuilder) BuildQueryPrompt(query, context string) string {
	return fmt.Sprintf(`You are RecruitBot, an AI assistant specializing in interview preparation and career advice.

User Query: %s

Additional Context: %s

Please provide a helpful, detailed response to the query.
Format your response in markdown syntax to make it easy to read.
Include sections, bullet points, and other markdown formatting as appropriate.
Keep your response professional, informative, and supportive.`, query, context)
}
