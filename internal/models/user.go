package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCandidate UserRole = "candidate"
	RoleRecruiter UserRole = "recruiter"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         UserRole  `gorm:"type:text;not null;default:'candidate'" json:"role"`
	Age          *int      `json:"age,omitempty"`
	Experience   *int      `json:"experience,omitempty"`
	JobTitle     *string   `gorm:"type:text" json:"job_title,omitempty"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// ExperienceYears returns the candidate's stated experience, or zero when the
// profile setup form has not been filled yet.
func (u *User) ExperienceYears() int {
	if u.Experience == nil {
		return 0
	}
	return *u.Experience
}
