package repository

import (
	"context"
	"errors"

	"deptsite/internal/models"

	"gorm.io/gorm"
)

// PublicationRepository defines persistence operations for publications.
type PublicationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Publication, error)
	List(ctx context.Context) ([]models.Publication, error)
	// ListByAuthorUsername returns all publications whose author has the
	// given username.
	ListByAuthorUsername(ctx context.Context, username string) ([]models.Publication, error)
	// Save inserts when the ID is zero, else updates.
	Save(ctx context.Context, pub *models.Publication) error
}

type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository returns a new PublicationRepository implementation.
func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	var pub models.Publication
	err := r.db.WithContext(ctx).Preload("Author").First(&pub, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Publication", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &pub, nil
}

func (r *publicationRepository) List(ctx context.Context) ([]models.Publication, error) {
	var pubs []models.Publication
	err := r.db.WithContext(ctx).Preload("Author").Find(&pubs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pubs, nil
}

func (r *publicationRepository) ListByAuthorUsername(ctx context.Context, username string) ([]models.Publication, error) {
	var pubs []models.Publication
	err := r.db.WithContext(ctx).
		Preload("Author").
		Joins("JOIN users ON users.id = publications.author_id").
		Where("users.username = ?", username).
		Find(&pubs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pubs, nil
}

func (r *publicationRepository) Save(ctx context.Context, pub *models.Publication) error {
	// The owning user is written by its own save path.
	if err := r.db.WithContext(ctx).Omit("Author").Save(pub).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
