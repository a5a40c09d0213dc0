package server

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"deptsite/internal/config"
	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSessionID = "test-session-secret"

// setupTestServer builds a Fiber app over a fresh in-memory sqlite database,
// with the template engine attached and no Redis. The rate limiter is a
// no-op outside production.
func setupTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Publication{},
		&models.Faculty{},
		&models.Resource{},
		&models.Subscription{},
		&models.Feedback{},
	))

	cfg := &config.Config{
		Port:           "8080",
		Env:            "test",
		DBType:         "sqlite",
		AdminSessionID: testSessionID,
	}

	srv := NewServerWithDeps(cfg, db, nil)
	app := fiber.New(fiber.Config{Views: Views()})
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app, srv
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, srv *Server, user models.User) models.User {
	t.Helper()
	require.NoError(t, srv.userRepo.Save(context.Background(), &user))
	return user
}

func seedArticle(t *testing.T, srv *Server, article *models.Article) *models.Article {
	t.Helper()
	require.NoError(t, srv.articleRepo.Save(context.Background(), article))
	return article
}

// formBody encodes a form payload for POST requests.
func formBody(fields map[string]string) *strings.Reader {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	return strings.NewReader(values.Encode())
}
