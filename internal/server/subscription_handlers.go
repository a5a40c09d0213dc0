package server

import (
	"deptsite/internal/dto"
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSubscriptions handles GET /api/subscriptions/
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	subs, err := s.subscriptionRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(subs)
}

// CreateSubscription handles POST /api/subscriptions/ (form-encoded) and
// sends the subscriber back to the home page.
func (s *Server) CreateSubscription(c *fiber.Ctx) error {
	var req dto.SubscriptionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sub := req.ToSubscription()
	if err := s.subscriptionRepo.Save(c.Context(), &sub); err != nil {
		return respondAppError(c, err)
	}

	return c.Redirect("/", fiber.StatusFound)
}
