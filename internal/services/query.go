package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// QueryService answers freeform recruitment questions outside the scripted
// interview flow. When the collaborator is unreachable it degrades to a set
// of canned markdown guides instead of failing the request.
type QueryService struct {
	generator Generator
	prompts   *PromptBuilder
	logger    *zap.Logger
}

func NewQueryService(generator Generator, logger *zap.Logger) *QueryService {
	return &QueryService{
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger,
	}
}

func (s *QueryService) Ask(ctx context.Context, query, extra string) (string, error) {
	prompt := s.prompts.BuildQueryPrompt(query, extra)

	response, err := s.generator.Generate(ctx, prompt, "")
	if err != nil {
		s.logger.Warn("Falling back to canned response", zap.Error(err))
		return cannedResponse(query, extra), nil
	}
	return response, nil
}

func cannedResponse(query, extra string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))

	switch {
	case strings.Contains(normalized, "interview") && strings.Contains(normalized, "question"):
		return interviewQuestionsGuide
	case strings.Contains(normalized, "prepare") || strings.Contains(normalized, "preparation"):
		return preparationGuide
	default:
		contextNote := ""
		if extra != "" {
			contextNote = fmt.Sprintf(" in the context of %s", extra)
		}
		return fmt.Sprintf(genericResponse, query, query, contextNote)
	}
}

const interviewQuestionsGuide = `# Common Interview Questions and Answers

## Technical Questions

### 1. Tell me about yourself
This is often the opening question in an interview and is one of the most important. Keep your answer to under 2 minutes and focus on your professional background, key achievements, and why you're interested in this role.

**Sample Answer Structure:**
- Brief introduction about your educational background
- Overview of your relevant work experience
- Key achievements that relate to the role
- Why you're excited about this opportunity

### 2. What are your strengths?
Focus on 2-3 strengths that are relevant to the position, and provide specific examples that demonstrate these strengths.

### 3. What are your weaknesses?
Choose a genuine weakness, but focus on the steps you're taking to improve in this area.

## Behavioral Questions

### 1. Describe a challenging situation and how you handled it
Use the STAR method (Situation, Task, Action, Result) to structure your answer.

### 2. Tell me about a time you worked effectively in a team
Highlight your collaboration skills, ability to resolve conflicts, and contributions to team success.

## Job-Specific Questions

The interviewer will likely ask questions specific to the role you're applying for. Research the company and role thoroughly to prepare for these questions.

## Questions to Ask the Interviewer

Prepare thoughtful questions to ask at the end of the interview, such as:
- What does success look like in this role?
- Can you describe the team culture?
- What are the biggest challenges facing the team/department right now?

Remember to stay authentic and provide specific examples from your experience whenever possible.
`

const preparationGuide = `# Interview Preparation Guide

## Before the Interview

### Research the Company
- Study the company's website, mission, values, products/services
- Research recent news, press releases, and achievements
- Understand their industry position and competitors
- Review their social media presence

### Understand the Role
- Analyze the job description thoroughly
- Identify key skills and experiences they're looking for
- Prepare examples that demonstrate these skills
- Research typical salary ranges for the position

### Practice Common Questions
- Prepare answers for standard questions like "Tell me about yourself"
- Practice behavioral questions using the STAR method
- Prepare examples that showcase your achievements
- Have questions ready to ask the interviewer

## Day of the Interview

### Presentation
- Dress appropriately for the company culture (when in doubt, dress more formally)
- Arrive 10-15 minutes early
- Bring copies of your resume, a notepad, and pen
- Turn off your phone before entering

### During the Interview
- Make a strong first impression with a firm handshake and smile
- Maintain good posture and eye contact
- Listen actively and take brief notes if necessary
- Be concise but thorough in your answers

## After the Interview

- Send a thank-you email within 24 hours
- Express appreciation for their time
- Reiterate your interest in the position
- Reference a specific topic discussed during the interview

Remember that preparation is key to interview success!
`

const genericResponse = `# Response to Your Query: "%s"

Thank you for your question. As an assistant specializing in recruitment and interview preparation, I'd be happy to help you with this.

## Understanding Your Query

You've asked about: **%s**%s

## Key Points to Consider

1. **Preparation is key**: Research the company and role thoroughly
2. **Practice makes perfect**: Rehearse your answers to common questions
3. **Be authentic**: Interviewers appreciate genuine responses
4. **Ask questions**: Show your interest by asking thoughtful questions

## Next Steps

Would you like more specific information about any aspect of the interview process? Please feel free to ask more detailed questions.
`
