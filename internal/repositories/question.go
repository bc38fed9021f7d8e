package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/models"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	// FindByInterviewID returns the interview's questions in ascending
	// order. The open question, when present, is always the last one.
	FindByInterviewID(interviewID uuid.UUID) ([]models.Question, error)
	Update(question *models.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create implements QuestionRepository.
func (r *questionRepository) Create(question *models.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return apperrors.Persistence("failed to create question", err)
	}
	return nil
}

// FindByInterviewID implements QuestionRepository.
func (r *questionRepository) FindByInterviewID(interviewID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Where("interview_id = ?", interviewID).
		Order("question_order ASC").
		Find(&questions).Error
	if err != nil {
		return nil, apperrors.Persistence("failed to list questions", err)
	}
	return questions, nil
}

// Update implements QuestionRepository.
func (r *questionRepository) Update(question *models.Question) error {
	if err := r.db.Save(question).Error; err != nil {
		return apperrors.Persistence("failed to update question", err)
	}
	return nil
}
