package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/librarian/internal/entities"
)

func TestBulkDeleteBooks(t *testing.T) {
	db, recorder, router, cleanup := setupTestRouter(t)
	defer cleanup()

	copy, member := createCirculationFixtures(t, db)
	loan := entities.Loan{
		CopyID:    copy.ID,
		MemberID:  member.ID,
		IssueDate: entities.Today(),
		DueDate:   entities.Today().AddDays(14),
	}
	require.NoError(t, db.DB.Create(&loan).Error)

	w := performRequest(router, http.MethodPost, "/api/books/bulk_delete", gin.H{
		"ids": []int64{copy.ISBN},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeResponse(t, w)["deleted"])
	assert.Equal(t, []string{"books"}, recorder.lastCall())

	var books, copies, loans int64
	db.DB.Model(&entities.Book{}).Count(&books)
	db.DB.Model(&entities.Copy{}).Count(&copies)
	db.DB.Model(&entities.Loan{}).Count(&loans)
	assert.Zero(t, books)
	assert.Zero(t, copies)
	assert.Zero(t, loans)
}

func TestBulkDelete_EmptyIDs(t *testing.T) {
	db, recorder, router, cleanup := setupTestRouter(t)
	defer cleanup()

	require.NoError(t, db.DB.Create(&entities.Book{ISBN: 9000000001, Title: "Stays"}).Error)

	w := performRequest(router, http.MethodPost, "/api/books/bulk_delete", gin.H{
		"ids": []int64{},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w), "error")
	assert.Empty(t, recorder.calls)

	var count int64
	db.DB.Model(&entities.Book{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBulkDeleteLoans_FreesCopies(t *testing.T) {
	db, recorder, router, cleanup := setupTestRouter(t)
	defer cleanup()

	copy, member := createCirculationFixtures(t, db)
	loan := entities.Loan{
		CopyID:    copy.ID,
		MemberID:  member.ID,
		IssueDate: entities.Today(),
		DueDate:   entities.Today().AddDays(14),
	}
	require.NoError(t, db.DB.Create(&loan).Error)
	require.NoError(t, db.DB.Model(&entities.Copy{}).Where("copy_id = ?", copy.ID).
		Update("status", entities.CopyStatusOnLoan).Error)

	w := performRequest(router, http.MethodPost, "/api/loans/bulk_delete", gin.H{
		"ids": []int64{int64(loan.ID)},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeResponse(t, w)["deleted"])
	assert.Equal(t, []string{"loans", "copies"}, recorder.lastCall())

	assert.Equal(t, entities.CopyStatusAvailable, copyStatus(t, db, copy.ID))

	var loans int64
	db.DB.Model(&entities.Loan{}).Count(&loans)
	assert.Zero(t, loans)
}

func TestBulkDeleteMembers(t *testing.T) {
	db, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	copy, member := createCirculationFixtures(t, db)
	loan := entities.Loan{
		CopyID:    copy.ID,
		MemberID:  member.ID,
		IssueDate: entities.Today(),
		DueDate:   entities.Today().AddDays(14),
	}
	require.NoError(t, db.DB.Create(&loan).Error)

	w := performRequest(router, http.MethodPost, "/api/members/bulk_delete", gin.H{
		"ids": []int64{int64(member.ID)},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var members, loans, copies int64
	db.DB.Model(&entities.Member{}).Count(&members)
	db.DB.Model(&entities.Loan{}).Count(&loans)
	db.DB.Model(&entities.Copy{}).Count(&copies)
	assert.Zero(t, members)
	assert.Zero(t, loans)
	// Copies survive a member cascade
	assert.Equal(t, int64(1), copies)
}
