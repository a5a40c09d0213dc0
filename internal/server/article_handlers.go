package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetArticles handles GET /api/article/
func (s *Server) GetArticles(c *fiber.Ctx) error {
	articles, err := s.articleRepo.ListByRecency(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(articles)
}

// GetArticle handles GET /api/article/:slug
func (s *Server) GetArticle(c *fiber.Ctx) error {
	article, err := s.articleRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(article)
}
