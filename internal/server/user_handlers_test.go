package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deptsite/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(app *fiber.App, path string, fields map[string]string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, formBody(fields))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return app.Test(req)
}

func TestCreateUser(t *testing.T) {
	app, srv := setupTestServer(t)

	t.Run("valid faculty redirects to the admin console", func(t *testing.T) {
		resp, err := postForm(app, "/api/user/", map[string]string{
			"username":    "jdoe",
			"firstName":   "John",
			"lastName":    "Doe",
			"designation": "faculty",
			"website":     "https://example.org",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/admin/console/"+testSessionID, resp.Header.Get("Location"))

		stored, err := srv.userRepo.GetByUsername(context.Background(), "jdoe")
		require.NoError(t, err)
		assert.Equal(t, "John", stored.FirstName)
		require.NotNil(t, stored.Website)
		assert.Equal(t, "https://example.org", *stored.Website)
		assert.Nil(t, stored.Description, "omitted form fields stay null")
	})

	t.Run("bad designation is a 400", func(t *testing.T) {
		resp, err := postForm(app, "/api/user/", map[string]string{
			"username":    "prof",
			"firstName":   "Ada",
			"lastName":    "Lovelace",
			"designation": "professor",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, `Designation should be "faculty" or "researcher"`, body.Error)

		_, err = srv.userRepo.GetByUsername(context.Background(), "prof")
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("duplicate username is a 400", func(t *testing.T) {
		resp, err := postForm(app, "/api/user/", map[string]string{
			"username":    "jdoe",
			"firstName":   "Jane",
			"lastName":    "Doe",
			"designation": "researcher",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "User already exists", body.Error)
	})
}

func TestAdminLogin_Redirects(t *testing.T) {
	app, _ := setupTestServer(t)

	t.Run("accepted credentials land on the console", func(t *testing.T) {
		resp, err := postForm(app, "/api/user/login", map[string]string{
			"username": "admin",
			"password": "",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/admin/console/"+testSessionID, resp.Header.Get("Location"))
	})

	t.Run("rejected credentials land on the error view", func(t *testing.T) {
		resp, err := postForm(app, "/api/user/login", map[string]string{
			"username": "admin",
			"password": "wrong",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/admin/console/error", resp.Header.Get("Location"))
	})
}

func TestGetUser(t *testing.T) {
	app, srv := setupTestServer(t)
	seedUser(t, srv, models.User{
		Username:    "jdoe",
		FirstName:   "John",
		LastName:    "Doe",
		Designation: strPtr(models.DesignationFaculty),
		Description: strPtr("Writes code"),
	})

	t.Run("full entity including description", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/jdoe", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "jdoe", body["username"])
		assert.Equal(t, "Writes code", body["description"])
		assert.Nil(t, body["address"], "absent optionals are null, not placeholders")
	})

	t.Run("unknown username is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/nobody", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetFacultyUsers_WireShape(t *testing.T) {
	app, srv := setupTestServer(t)
	seedUser(t, srv, models.User{
		Username:    "jdoe",
		FirstName:   "John",
		LastName:    "Doe",
		Designation: strPtr(models.DesignationFaculty),
		Description: strPtr("Writes code"),
	})
	seedUser(t, srv, models.User{
		Username:    "researcher1",
		Designation: strPtr(models.DesignationResearcher),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/faculty/all", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "jdoe", body[0]["username"])

	// The faculty listing omits the description entirely.
	_, hasDescription := body[0]["description"]
	assert.False(t, hasDescription)
}
