package server

import (
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondAppError writes the JSON error response with a status derived from
// the AppError code. Unknown errors become 500s.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if appErr, ok := err.(*models.AppError); ok {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		}
	}
	return models.RespondWithError(c, status, err)
}

// adminConsolePath is the redirect target after successful admin-bound writes.
func (s *Server) adminConsolePath() string {
	return "/admin/console/" + s.config.AdminSessionID
}
