package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/models"
)

type JobProfileRepository interface {
	Create(profile *models.JobProfile) error
	FindByID(id uuid.UUID) (*models.JobProfile, error)
	List(activeOnly bool) ([]models.JobProfile, error)
	Update(profile *models.JobProfile) error
	Delete(id uuid.UUID) error
}

type jobProfileRepository struct {
	db *gorm.DB
}

func NewJobProfileRepository(db *gorm.DB) JobProfileRepository {
	return &jobProfileRepository{db: db}
}

// Create implements JobProfileRepository.
func (r *jobProfileRepository) Create(profile *models.JobProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Validation("job profile title must be unique")
		}
		return apperrors.Persistence("failed to create job profile", err)
	}
	return nil
}

// FindByID implements JobProfileRepository.
func (r *jobProfileRepository) FindByID(id uuid.UUID) (*models.JobProfile, error) {
	var profile models.JobProfile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job profile not found")
		}
		return nil, apperrors.Persistence("failed to find job profile", err)
	}
	return &profile, nil
}

// List implements JobProfileRepository.
func (r *jobProfileRepository) List(activeOnly bool) ([]models.JobProfile, error) {
	var profiles []models.JobProfile
	query := r.db.Order("created_at ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, apperrors.Persistence("failed to list job profiles", err)
	}
	return profiles, nil
}

// Update implements JobProfileRepository.
func (r *jobProfileRepository) Update(profile *models.JobProfile) error {
	if err := r.db.Save(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Validation("job profile title must be unique")
		}
		return apperrors.Persistence("failed to update job profile", err)
	}
	return nil
}

// Delete implements JobProfileRepository.
func (r *jobProfileRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.JobProfile{})
	if result.Error != nil {
		return apperrors.Persistence("failed to delete job profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("job profile not found")
	}
	return nil
}
