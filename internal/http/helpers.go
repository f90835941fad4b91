package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondStorageError sends a 500 response carrying the underlying store
// error message. Surfacing the raw message is a deliberate simplicity
// trade-off for this API.
func respondStorageError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 error and returns 0, false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseISBNParam extracts a book's ISBN from URL parameters.
func parseISBNParam(c *gin.Context, paramName string) (int64, bool) {
	isbnStr := c.Param(paramName)
	isbn, err := strconv.ParseInt(isbnStr, 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return isbn, true
}

// --- Export side channel ---

// ExportFunc refreshes the denormalized snapshots of the given tables. It is
// fire-and-forget: implementations must never surface failures to the caller.
type ExportFunc func(tables ...string)

// refreshExports triggers the export side channel when one is configured.
func refreshExports(export ExportFunc, tables ...string) {
	if export != nil && len(tables) > 0 {
		export(tables...)
	}
}
