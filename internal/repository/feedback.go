package repository

import (
	"context"

	"deptsite/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines persistence operations for contact-page feedback.
type FeedbackRepository interface {
	List(ctx context.Context) ([]models.Feedback, error)
	Save(ctx context.Context, fb *models.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository returns a new FeedbackRepository implementation.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var fbs []models.Feedback
	if err := r.db.WithContext(ctx).Find(&fbs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return fbs, nil
}

func (r *feedbackRepository) Save(ctx context.Context, fb *models.Feedback) error {
	if err := r.db.WithContext(ctx).Save(fb).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
