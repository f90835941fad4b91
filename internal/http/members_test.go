package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/librarian/internal/entities"
)

func TestCreateMember(t *testing.T) {
	db, recorder, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/members", gin.H{
		"first_name": "Ada",
		"last_name":  "Reader",
		"email":      "ada.reader@example.com",
		"address":    "1 Main St",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "ada.reader@example.com", body["email"])
	// Registration date defaults to today
	assert.Equal(t, entities.Today().String(), body["date_registered"])
	assert.Equal(t, []string{"members"}, recorder.lastCall())

	var count int64
	db.DB.Model(&entities.Member{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateMember_InvalidEmail(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/api/members", gin.H{
		"first_name": "Ada",
		"last_name":  "Reader",
		"email":      "not-an-email",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w), "error")
}

func TestGetAllMembers(t *testing.T) {
	db, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	createCirculationFixtures(t, db)

	w := performRequest(router, http.MethodGet, "/api/members", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var members []entities.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	assert.Len(t, members, 1)
}

func TestUpdateMember(t *testing.T) {
	db, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	_, member := createCirculationFixtures(t, db)

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/members/%d", member.ID), gin.H{
		"first_name": "Adeline",
		"last_name":  "Reader",
		"email":      "adeline.reader@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Member updated", decodeResponse(t, w)["message"])

	var stored entities.Member
	require.NoError(t, db.DB.First(&stored, "member_id = ?", member.ID).Error)
	assert.Equal(t, "Adeline", stored.FirstName)
	assert.Equal(t, "adeline.reader@example.com", stored.Email)
}

func TestDeleteMember(t *testing.T) {
	db, recorder, router, cleanup := setupTestRouter(t)
	defer cleanup()

	_, member := createCirculationFixtures(t, db)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/members/%d", member.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Member deleted", decodeResponse(t, w)["message"])
	assert.Equal(t, []string{"members"}, recorder.lastCall())

	var count int64
	db.DB.Model(&entities.Member{}).Count(&count)
	assert.Zero(t, count)
}
