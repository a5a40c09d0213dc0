package server

import (
	"deptsite/internal/dto"
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicationsByAuthor handles GET /api/publications/:authorUsername
func (s *Server) GetPublicationsByAuthor(c *fiber.Ctx) error {
	pubs, err := s.publicationRepo.ListByAuthorUsername(c.Context(), c.Params("authorUsername"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(dto.WirePublications(pubs))
}

// CreatePublication handles POST /api/publications/ (form-encoded). An
// unresolved author username is a 400 and writes nothing.
func (s *Server) CreatePublication(c *fiber.Ctx) error {
	var req dto.PublicationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.publicationService.CreateForAuthor(c.Context(), &req); err != nil {
		return respondAppError(c, err)
	}

	return c.Redirect(s.adminConsolePath(), fiber.StatusFound)
}
