package server

import (
	"deptsite/internal/dto"
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// HomePage handles GET /
func (s *Server) HomePage(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title": "SERL IIIT Allahabad",
	})
}

// ArticlePage handles GET /article/:slug
func (s *Server) ArticlePage(c *fiber.Ctx) error {
	article, err := s.articleRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if models.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "No such article!")
		}
		return err
	}

	rendered := dto.RenderArticle(*article)
	return c.Render("article", fiber.Map{
		"Title":   rendered.Title,
		"Article": rendered,
	})
}

// FacultyPage handles GET /faculty
func (s *Server) FacultyPage(c *fiber.Ctx) error {
	faculties, err := s.userRepo.ListByDesignation(c.Context(), models.DesignationFaculty)
	if err != nil {
		return err
	}
	return c.Render("faculty", fiber.Map{
		"Title":     "Faculty - SERL IIITA",
		"Faculties": dto.RenderUsers(faculties),
	})
}

// PublicationsPage handles GET /publications
func (s *Server) PublicationsPage(c *fiber.Ctx) error {
	pubs, err := s.publicationRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Render("publications", fiber.Map{
		"Title":        "Publications - SERL IIITA",
		"Publications": dto.RenderPublications(pubs),
	})
}

// PublicationsByAuthorPage handles GET /publications/:authorUsername
func (s *Server) PublicationsByAuthorPage(c *fiber.Ctx) error {
	username := c.Params("authorUsername")

	pubs, err := s.publicationRepo.ListByAuthorUsername(c.Context(), username)
	if err != nil {
		return err
	}

	// The page title tolerates an unknown author the same way the listing
	// tolerates an authorless publication.
	firstName, lastName := "null", "null"
	author, err := s.userRepo.GetByUsername(c.Context(), username)
	if err != nil && !models.IsNotFound(err) {
		return err
	}
	if author != nil {
		firstName, lastName = author.FirstName, author.LastName
	}

	return c.Render("publications", fiber.Map{
		"Title":        "Publications by " + firstName + " " + lastName,
		"Publications": dto.RenderPublications(pubs),
	})
}

// ResearchersPage handles GET /researchers
func (s *Server) ResearchersPage(c *fiber.Ctx) error {
	researchers, err := s.userRepo.ListByDesignation(c.Context(), models.DesignationResearcher)
	if err != nil {
		return err
	}
	return c.Render("researchers", fiber.Map{
		"Title":       "Researchers - SERL IIITA",
		"Researchers": dto.RenderUsers(researchers),
	})
}

// ResourcesPage handles GET /resources
func (s *Server) ResourcesPage(c *fiber.Ctx) error {
	return c.Render("resources", fiber.Map{
		"Title": "Resources - SERL IIITA",
	})
}

// ContactPage handles GET /contact
func (s *Server) ContactPage(c *fiber.Ctx) error {
	return c.Render("contact", fiber.Map{
		"Title": "Contact Us - SERL IIITA",
	})
}

// AdminConsolePage handles GET /admin/console/:sessionId
//
// The session ID path segment is compared against the configured shared
// secret with plain string equality. A mismatch renders the error view and
// leaks nothing.
func (s *Server) AdminConsolePage(c *fiber.Ctx) error {
	if c.Params("sessionId") != s.config.AdminSessionID {
		return c.Render("admin-error", fiber.Map{
			"Title": "Admin Console",
		})
	}

	ctx := c.Context()
	faculties, err := s.userRepo.ListByDesignation(ctx, models.DesignationFaculty)
	if err != nil {
		return err
	}
	researchers, err := s.userRepo.ListByDesignation(ctx, models.DesignationResearcher)
	if err != nil {
		return err
	}
	pubs, err := s.publicationRepo.List(ctx)
	if err != nil {
		return err
	}
	subs, err := s.subscriptionRepo.List(ctx)
	if err != nil {
		return err
	}
	feedback, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return err
	}

	return c.Render("admin-console", fiber.Map{
		"Title":         "Admin Console",
		"Faculties":     dto.RenderUsers(faculties),
		"Researchers":   dto.RenderUsers(researchers),
		"Publications":  dto.RenderPublications(pubs),
		"Subscriptions": subs,
		"Feedback":      feedback,
	})
}
