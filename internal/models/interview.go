package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewPending    InterviewStatus = "pending"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
)

type InterviewResult string

const (
	ResultPass       InterviewResult = "pass"
	ResultBorderline InterviewResult = "borderline"
	ResultFail       InterviewResult = "fail"
	// ResultError marks a session that was closed because report generation
	// failed. Downstream consumers must treat it as retryable, never as a
	// real verdict.
	ResultError InterviewResult = "error"
)

type Interview struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	JobProfileID    uuid.UUID       `gorm:"type:uuid;not null" json:"job_profile_id"`
	ExperienceLevel string          `gorm:"type:text;not null" json:"experience_level"`
	Status          InterviewStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	Result          InterviewResult `gorm:"type:text" json:"result,omitempty"`
	Score           float64         `json:"score"`
	Feedback        string          `gorm:"type:text" json:"feedback,omitempty"`
	Report          string          `gorm:"type:text" json:"report,omitempty"`
	CreatedAt       time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

func (Interview) TableName() string {
	return "interviews"
}
