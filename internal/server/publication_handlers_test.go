package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deptsite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePublication(t *testing.T) {
	app, srv := setupTestServer(t)
	seedUser(t, srv, models.User{Username: "jdoe", FirstName: "John", LastName: "Doe"})

	t.Run("valid publication redirects and is attributed", func(t *testing.T) {
		resp, err := postForm(app, "/api/publications/", map[string]string{
			"title":          "Paper",
			"authorUsername": "jdoe",
			"journal":        "Nature",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/admin/console/"+testSessionID, resp.Header.Get("Location"))

		pubs, err := srv.publicationRepo.ListByAuthorUsername(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Len(t, pubs, 1)
		assert.Equal(t, "Paper", pubs[0].Title)
	})

	t.Run("unknown author is a 400 and writes nothing", func(t *testing.T) {
		resp, err := postForm(app, "/api/publications/", map[string]string{
			"title":          "Ghost paper",
			"authorUsername": "nobody",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid author username", body.Error)

		all, err := srv.publicationRepo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 1, "only the earlier publication exists")
	})
}

func TestGetPublicationsByAuthor_WireShape(t *testing.T) {
	app, srv := setupTestServer(t)
	author := seedUser(t, srv, models.User{Username: "jdoe", FirstName: "John", LastName: "Doe"})

	pub := models.Publication{Title: "Paper", AuthorID: &author.ID}
	require.NoError(t, srv.publicationRepo.Save(context.Background(), &pub))

	req := httptest.NewRequest(http.MethodGet, "/api/publications/jdoe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)

	assert.Equal(t, "Paper", body[0]["title"])
	assert.Equal(t, float64(author.ID), body[0]["authorId"])
	assert.Nil(t, body[0]["journal"])

	// The author entity is flattened away on the wire.
	_, hasAuthor := body[0]["author"]
	assert.False(t, hasAuthor)
}
