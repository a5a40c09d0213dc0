// Package server contains the HTTP surface: HTML pages, the JSON API and the
// Fiber app wiring.
package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"deptsite/internal/cache"
	"deptsite/internal/config"
	"deptsite/internal/database"
	"deptsite/internal/middleware"
	"deptsite/internal/repository"
	"deptsite/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Views builds the HTML template engine over the embedded templates.
func Views() fiber.Views {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	articleRepo      repository.ArticleRepository
	userRepo         repository.UserRepository
	publicationRepo  repository.PublicationRepository
	subscriptionRepo repository.SubscriptionRepository
	feedbackRepo     repository.FeedbackRepository

	userService        *service.UserService
	publicationService *service.PublicationService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	s := NewServerWithDeps(cfg, db, cache.GetClient())
	s.promMiddleware = fiberprometheus.New("deptsite")
	return s, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory sqlite DB and no Redis. Prometheus HTTP
// metrics are only attached by NewServer; the collectors live in the global
// registry and cannot be registered once per test server.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	s := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		articleRepo:      repository.NewArticleRepository(db),
		userRepo:         repository.NewUserRepository(db),
		publicationRepo:  repository.NewPublicationRepository(db),
		subscriptionRepo: repository.NewSubscriptionRepository(db),
		feedbackRepo:     repository.NewFeedbackRepository(db),
	}
	s.userService = service.NewUserService(s.userRepo, s.publicationRepo)
	s.publicationService = service.NewPublicationService(s.publicationRepo, s.userRepo)
	return s
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate the request ID into the request context for logging
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Department Site Metrics Dashboard",
	}))

	// HTML pages
	app.Get("/", s.HomePage)
	app.Get("/article/:slug", s.ArticlePage)
	app.Get("/faculty", s.FacultyPage)
	app.Get("/publications", s.PublicationsPage)
	app.Get("/publications/:authorUsername", s.PublicationsByAuthorPage)
	app.Get("/researchers", s.ResearchersPage)
	app.Get("/resources", s.ResourcesPage)
	app.Get("/contact", s.ContactPage)
	app.Get("/admin/console/:sessionId", s.AdminConsolePage)

	api := app.Group("/api")

	// Article routes
	articles := api.Group("/article")
	articles.Get("/", s.GetArticles)
	articles.Get("/:slug", s.GetArticle)

	// User routes. Specific /faculty/all and /login before the generic
	// /:username route.
	users := api.Group("/user")
	users.Get("/", s.GetUsers)
	users.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_user"), s.CreateUser)
	users.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "admin_login"), s.AdminLogin)
	users.Get("/faculty/all", s.GetFacultyUsers)
	users.Get("/:username", s.GetUser)

	// Publication routes
	publications := api.Group("/publications")
	publications.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_publication"), s.CreatePublication)
	publications.Get("/:authorUsername", s.GetPublicationsByAuthor)

	// Subscription routes
	subscriptions := api.Group("/subscriptions")
	subscriptions.Get("/", s.GetSubscriptions)
	subscriptions.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_subscription"), s.CreateSubscription)

	// Feedback routes
	api.Post("/feedback/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_feedback"), s.CreateFeedback)
}

// Shutdown releases server resources (database and Redis connections).
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
