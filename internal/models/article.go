package models

import (
	"time"

	"deptsite/internal/slug"
)

// Article is a news-style post on the site, written by exactly one User.
// Articles reference their author but do not own it.
type Article struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Headline string    `json:"headline"`
	Content  string    `gorm:"type:text" json:"content"`
	AuthorID uint      `gorm:"not null;index" json:"-"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	Slug     string    `gorm:"index" json:"slug"`
	AddedAt  time.Time `json:"addedAt"`
}

// NewArticle constructs an Article, deriving the slug from the title and
// stamping the creation time. The slug is never recomputed after this.
func NewArticle(title, headline, content string, author User) *Article {
	return &Article{
		Title:    title,
		Headline: headline,
		Content:  content,
		AuthorID: author.ID,
		Author:   author,
		Slug:     slug.Make(title),
		AddedAt:  time.Now(),
	}
}
