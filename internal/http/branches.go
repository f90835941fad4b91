package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/circulation"
	"github.com/openshelf/librarian/internal/entities"
)

type BranchesController struct {
	circulation *circulation.Repository
}

func NewBranchesController(circulation *circulation.Repository) *BranchesController {
	return &BranchesController{circulation: circulation}
}

// GetAllBranches handles GET /api/branches.
func (controller *BranchesController) GetAllBranches(c *gin.Context) {
	branches, err := controller.circulation.GetAllBranches()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

// CreateBranch handles POST /api/branches.
func (controller *BranchesController) CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	branch := &entities.Branch{
		Name:     req.Name,
		Location: req.Location,
	}
	if err := controller.circulation.CreateBranch(branch); err != nil {
		respondStorageError(c, err)
		return
	}

	respondCreated(c, branch)
}
