package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/librarian/internal/entities"
)

func TestCreatePublisher(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/publishers", gin.H{
		"publisher_name": "Hardcase Press",
		"address":        "1 Print Ln",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "Hardcase Press", body["name"])
	assert.NotZero(t, body["publisher_id"])
}

func TestCreatePublisher_MissingName(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/publishers", gin.H{
		"address": "1 Print Ln",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w), "error")
}

func TestGetAllPublishers(t *testing.T) {
	db, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	require.NoError(t, db.DB.Create(&entities.Publisher{Name: "Hardcase Press"}).Error)

	w := performRequest(router, http.MethodGet, "/api/publishers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var publishers []entities.Publisher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &publishers))
	assert.Len(t, publishers, 1)
}

func TestCreateAuthor(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/authors", gin.H{
		"first_name": "Iris",
		"last_name":  "Quine",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "Iris", body["first_name"])
}

func TestCreateAuthor_MissingLastName(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/authors", gin.H{
		"first_name": "Iris",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBranch(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/branches", gin.H{
		"branch_name": "Central",
		"location":    "Main St",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "Central", body["name"])
}

func TestGetAllBranches(t *testing.T) {
	db, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	require.NoError(t, db.DB.Create(&entities.Branch{Name: "Central"}).Error)

	w := performRequest(router, http.MethodGet, "/api/branches", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var branches []entities.Branch
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &branches))
	assert.Len(t, branches, 1)
}
