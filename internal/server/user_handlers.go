package server

import (
	"deptsite/internal/dto"
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/user/
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(users)
}

// CreateUser handles POST /api/user/ (form-encoded). A created faculty or
// researcher redirects to the admin console.
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.userService.Create(c.Context(), &req); err != nil {
		return respondAppError(c, err)
	}

	return c.Redirect(s.adminConsolePath(), fiber.StatusFound)
}

// AdminLogin handles POST /api/user/login (form-encoded). The credential
// check is a hardcoded comparison; failures redirect to the admin error view
// rather than returning an error status.
func (s *Server) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if s.userService.AdminLogin(req) {
		return c.Redirect(s.adminConsolePath(), fiber.StatusFound)
	}
	return c.Redirect("/admin/console/error", fiber.StatusFound)
}

// GetUser handles GET /api/user/:username
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// GetFacultyUsers handles GET /api/user/faculty/all
func (s *Server) GetFacultyUsers(c *fiber.Ctx) error {
	faculties, err := s.userRepo.ListByDesignation(c.Context(), models.DesignationFaculty)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(dto.WireUsers(faculties))
}
