package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionMCQ     QuestionType = "mcq"
	QuestionConcept QuestionType = "concept"
	QuestionCoding  QuestionType = "coding"
)

type Question struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_questions_interview_order,priority:1" json:"interview_id"`
	Order       int          `gorm:"column:question_order;not null;uniqueIndex:idx_questions_interview_order,priority:2" json:"order"`
	Text        string       `gorm:"type:text;not null" json:"text"`
	Category    string       `gorm:"type:text" json:"category"`
	Type        QuestionType `gorm:"type:text" json:"type"`
	Answer      *string      `gorm:"type:text" json:"answer,omitempty"`
	Score       float64      `json:"score"`
	Feedback    string       `gorm:"type:text" json:"feedback,omitempty"`
	AnsweredAt  *time.Time   `json:"answered_at,omitempty"`
	CreatedAt   time.Time    `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// Answered reports whether an answer has been recorded for the question.
func (q *Question) Answered() bool {
	return q.Answer != nil
}

// TypeForPosition maps a zero-based question position to its type bucket:
// the first four questions are multiple choice, the next three conceptual,
// the final three coding exercises.
func TypeForPosition(position int) QuestionType {
	switch {
	case position <= 3:
		return QuestionMCQ
	case position <= 6:
		return QuestionConcept
	default:
		return QuestionCoding
	}
}
