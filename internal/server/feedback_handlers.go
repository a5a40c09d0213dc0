package server

import (
	"deptsite/internal/dto"
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback handles POST /api/feedback/ (form-encoded) and sends the
// visitor back to the contact page.
func (s *Server) CreateFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fb := req.ToFeedback()
	if err := s.feedbackRepo.Save(c.Context(), &fb); err != nil {
		return respondAppError(c, err)
	}

	return c.Redirect("/contact", fiber.StatusFound)
}
