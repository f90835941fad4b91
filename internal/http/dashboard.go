package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/dashboard"
)

type DashboardController struct {
	dashboard *dashboard.Repository
}

func NewDashboardController(dashboard *dashboard.Repository) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetDashboard handles GET /api/dashboard.
func (controller *DashboardController) GetDashboard(c *gin.Context) {
	snapshot, err := controller.dashboard.Snapshot()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
