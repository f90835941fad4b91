package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/cascade"
)

type BulkDeleteController struct {
	engine *cascade.Engine
	export ExportFunc
}

func NewBulkDeleteController(engine *cascade.Engine, export ExportFunc) *BulkDeleteController {
	return &BulkDeleteController{engine: engine, export: export}
}

// For returns the POST /api/<entity>/bulk_delete handler for one entity type.
// The whole cascade runs in one transaction: on any failure nothing is
// deleted.
func (controller *BulkDeleteController) For(entity cascade.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkDeleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}

		deleted, err := controller.engine.BulkDelete(entity, req.IDs)
		if err != nil {
			if errors.Is(err, cascade.ErrNoIDs) {
				respondBadRequest(c, err.Error())
				return
			}
			respondStorageError(c, err)
			return
		}

		refreshExports(controller.export, cascade.ExportTables(entity)...)
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
