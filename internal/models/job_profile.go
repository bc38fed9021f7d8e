package models

import (
	"time"

	"github.com/google/uuid"
)

// JobProfile is a recruiter-defined template describing a role and the
// criteria interviews against that role are evaluated with.
type JobProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title              string    `gorm:"type:text;uniqueIndex;not null" json:"title"`
	Description        string    `gorm:"type:text" json:"description"`
	TechnicalSkills    []string  `gorm:"type:jsonb;serializer:json" json:"technical_skills"`
	SoftSkills         []string  `gorm:"type:jsonb;serializer:json" json:"soft_skills"`
	ExperienceReq      string    `gorm:"type:text" json:"experience_req"`
	EvaluationFocus    string    `gorm:"type:text" json:"evaluation_focus"`
	CustomInstructions string    `gorm:"type:text" json:"custom_instructions"`
	Active             bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt          time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt          time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (JobProfile) TableName() string {
	return "job_profiles"
}
