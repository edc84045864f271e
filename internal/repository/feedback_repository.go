package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	ListByCourse(ctx context.Context, courseID uint) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository builds a GORM-backed repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) ListByCourse(ctx context.Context, courseID uint) ([]model.Feedback, error) {
	var feedback []model.Feedback
	if err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
