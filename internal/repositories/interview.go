package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id uuid.UUID) (*models.Interview, error)
	FindByUserID(userID uuid.UUID) ([]models.Interview, error)
	FindAll() ([]models.Interview, error)
	UpdateStatus(id uuid.UUID, status models.InterviewStatus) error
	Complete(id uuid.UUID, outcome *CompletionData) error
}

// CompletionData carries the finalize outcome. All fields are written in a
// single UPDATE so partial completion is never observable.
type CompletionData struct {
	Score    float64
	Result   models.InterviewResult
	Feedback string
	Report   string
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository.
func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		return apperrors.Persistence("failed to create interview", err)
	}
	return nil
}

// FindByID implements InterviewRepository.
func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("interview not found")
		}
		return nil, apperrors.Persistence("failed to find interview", err)
	}
	return &interview, nil
}

// FindByUserID implements InterviewRepository.
func (r *interviewRepository) FindByUserID(userID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, apperrors.Persistence("failed to list interviews", err)
	}
	return interviews, nil
}

// FindAll implements InterviewRepository.
func (r *interviewRepository) FindAll() ([]models.Interview, error) {
	var interviews []models.Interview
	if err := r.db.Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, apperrors.Persistence("failed to list interviews", err)
	}
	return interviews, nil
}

// UpdateStatus implements InterviewRepository.
func (r *interviewRepository) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return apperrors.Persistence("failed to update interview status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("interview not found")
	}
	return nil
}

// Complete implements InterviewRepository.
func (r *interviewRepository) Complete(id uuid.UUID, outcome *CompletionData) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.InterviewCompleted,
			"result":       outcome.Result,
			"score":        outcome.Score,
			"feedback":     outcome.Feedback,
			"report":       outcome.Report,
			"completed_at": time.Now(),
		})
	if result.Error != nil {
		return apperrors.Persistence("failed to complete interview", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("interview not found")
	}
	return nil
}
