package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/circulation"
	"github.com/openshelf/librarian/internal/entities"
)

type CopiesController struct {
	circulation *circulation.Repository
	export      ExportFunc
}

func NewCopiesController(circulation *circulation.Repository, export ExportFunc) *CopiesController {
	return &CopiesController{circulation: circulation, export: export}
}

// GetAllCopies handles GET /api/copies.
func (controller *CopiesController) GetAllCopies(c *gin.Context) {
	copies, err := controller.circulation.GetAllCopies()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, copies)
}

// CreateCopy handles POST /api/copies.
func (controller *CopiesController) CreateCopy(c *gin.Context) {
	var req CreateCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	copy := &entities.Copy{
		ISBN:     req.ISBN,
		BranchID: req.BranchID,
		Status:   req.Status,
	}
	if err := controller.circulation.CreateCopy(copy); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "copies")
	respondCreated(c, copy)
}

// UpdateCopy handles PUT /api/copies/:id.
func (controller *CopiesController) UpdateCopy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	copy := &entities.Copy{
		ISBN:     req.ISBN,
		BranchID: req.BranchID,
		Status:   req.Status,
	}
	if err := controller.circulation.UpdateCopy(id, copy); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "copies")
	c.JSON(http.StatusOK, gin.H{"message": "Copy updated"})
}

// DeleteCopy handles DELETE /api/copies/:id.
func (controller *CopiesController) DeleteCopy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.circulation.DeleteCopy(id); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "copies")
	c.JSON(http.StatusOK, gin.H{"message": "Copy deleted"})
}
