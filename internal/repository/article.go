// Package repository provides data access interfaces and GORM-backed
// implementations for the application's models.
package repository

import (
	"context"
	"errors"

	"deptsite/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	// GetBySlug returns the first article carrying the slug. Slugs are not
	// unique at the store level; insertion order breaks ties.
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	// ListByRecency returns all articles, newest first.
	ListByRecency(ctx context.Context) ([]models.Article, error)
	// Save inserts when the ID is zero, else updates.
	Save(ctx context.Context, article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository returns a new ArticleRepository implementation.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ?", slug).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", slug)
		}
		return nil, models.NewInternalError(err)
	}
	return &article, nil
}

func (r *articleRepository) ListByRecency(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("added_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return articles, nil
}

func (r *articleRepository) Save(ctx context.Context, article *models.Article) error {
	// The authoring user is written by its own save path.
	if err := r.db.WithContext(ctx).Omit("Author").Save(article).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
