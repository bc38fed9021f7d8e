package services

import (
	"encoding/json"
	"strings"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
)

// AnswerEvaluation is the structured verdict the collaborator returns for a
// single answer. Score is on a 0-10 scale.
type AnswerEvaluation struct {
	Score               float64 `json:"score"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	AdditionalInsights  string  `json:"additional_insights"`
	OverallFeedback     string  `json:"overall_feedback"`
}

type questionPayload struct {
	Question string `json:"question"`
}

// ParseQuestions extracts up to max question texts from raw collaborator
// output. The chain is: strict JSON (array of strings or of {"question"}
// objects), then heuristic line-based reconstruction, then a collaborator
// error when nothing usable remains.
func ParseQuestions(raw string, max int) ([]string, error) {
	cleaned := extractJSON(raw)

	var objects []questionPayload
	if err := json.Unmarshal([]byte(cleaned), &objects); err == nil {
		questions := make([]string, 0, len(objects))
		for _, obj := range objects {
			if text := strings.TrimSpace(obj.Question); text != "" {
				questions = append(questions, text)
			}
		}
		if len(questions) > 0 {
			return capQuestions(questions, max), nil
		}
	}

	var plain []string
	if err := json.Unmarshal([]byte(cleaned), &plain); err == nil {
		questions := make([]string, 0, len(plain))
		for _, text := range plain {
			if text = strings.TrimSpace(text); text != "" {
				questions = append(questions, text)
			}
		}
		if len(questions) > 0 {
			return capQuestions(questions, max), nil
		}
	}

	if questions := splitQuestionLines(raw); len(questions) > 0 {
		return capQuestions(questions, max), nil
	}

	return nil, apperrors.Collaborator("no questions found in generation response", nil)
}

// splitQuestionLines reconstructs a question list from free text by
// splitting on lines that open a new item.
func splitQuestionLines(raw string) []string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	var questions []string
	current := ""

	for _, line := range lines {
		if startsQuestion(line) && current != "" {
			questions = append(questions, strings.TrimSpace(current))
			current = line
		} else {
			current += " " + line
		}
	}
	if text := strings.TrimSpace(current); text != "" {
		questions = append(questions, text)
	}

	return questions
}

func startsQuestion(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"Question", "Q", "-", "*"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func capQuestions(questions []string, max int) []string {
	if max > 0 && len(questions) > max {
		return questions[:max]
	}
	return questions
}

// ParseEvaluation decodes the collaborator's answer evaluation. The second
// return value is false when the payload is not usable JSON; the caller
// substitutes the documented fallback evaluation.
func ParseEvaluation(raw string) (*AnswerEvaluation, bool) {
	var evaluation AnswerEvaluation
	if err := json.Unmarshal([]byte(extractJSON(raw)), &evaluation); err != nil {
		return nil, false
	}
	return &evaluation, true
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting around it.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startArr != -1 && endArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj) {
		return text[startArr : endArr+1]
	}
	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
