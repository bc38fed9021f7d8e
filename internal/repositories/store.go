package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/models"
)

// Store bundles the entity repositories over one database handle.
type Store struct {
	Users       UserRepository
	JobProfiles JobProfileRepository
	Interviews  InterviewRepository
	Questions   QuestionRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:       NewUserRepository(db),
		JobProfiles: NewJobProfileRepository(db),
		Interviews:  NewInterviewRepository(db),
		Questions:   NewQuestionRepository(db),
	}
}

// Transactor serializes mutations per interview. Two concurrent answer
// submissions for the same interview could otherwise both see the same open
// question and break the one-open-question invariant.
type Transactor interface {
	// WithInterviewLock runs fn inside a transaction while holding a row
	// lock on the interview. The Store passed to fn is bound to that
	// transaction; a non-nil error from fn rolls everything back.
	WithInterviewLock(ctx context.Context, interviewID uuid.UUID, fn func(s *Store) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithInterviewLock(ctx context.Context, interviewID uuid.UUID, fn func(s *Store) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var interview models.Interview
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", interviewID).
			First(&interview).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("interview not found")
			}
			return apperrors.Persistence("failed to lock interview", err)
		}
		return fn(NewStore(tx))
	})
}
