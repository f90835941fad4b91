package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/librarian/internal/database"
	"github.com/openshelf/librarian/internal/entities"
)

// exportRecorder captures refresh calls so tests can assert on the export
// side channel without touching the filesystem.
type exportRecorder struct {
	calls [][]string
}

func (r *exportRecorder) Func() ExportFunc {
	return func(tables ...string) {
		r.calls = append(r.calls, tables)
	}
}

func (r *exportRecorder) lastCall() []string {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func setupTestRouter(t *testing.T) (*database.Database, *exportRecorder, *gin.Engine, func()) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	recorder := &exportRecorder{}
	router := NewRouter(NewRouterConfig(db, recorder.Func(), "test"))

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, recorder, router, cleanup
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performRawRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createCirculationFixtures inserts the minimum rows a loan needs: a book,
// a branch, one available copy and a member.
func createCirculationFixtures(t *testing.T, db *database.Database) (entities.Copy, entities.Member) {
	t.Helper()

	require.NoError(t, db.DB.Create(&entities.Book{ISBN: 9000000001, Title: "Title", Genre: "Fiction"}).Error)

	branch := entities.Branch{Name: "Central", Location: "Main St"}
	require.NoError(t, db.DB.Create(&branch).Error)

	copy := entities.Copy{ISBN: 9000000001, BranchID: branch.ID, Status: entities.CopyStatusAvailable}
	require.NoError(t, db.DB.Create(&copy).Error)

	member := entities.Member{
		FirstName:      "Ada",
		LastName:       "Reader",
		Email:          "ada.reader@example.com",
		DateRegistered: entities.Today(),
	}
	require.NoError(t, db.DB.Create(&member).Error)

	return copy, member
}

func copyStatus(t *testing.T, db *database.Database, id uint) entities.CopyStatus {
	t.Helper()
	var copy entities.Copy
	require.NoError(t, db.DB.First(&copy, "copy_id = ?", id).Error)
	return copy.Status
}
