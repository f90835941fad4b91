package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/catalog"
	"github.com/openshelf/librarian/internal/entities"
)

type PublishersController struct {
	catalog *catalog.Repository
}

func NewPublishersController(catalog *catalog.Repository) *PublishersController {
	return &PublishersController{catalog: catalog}
}

// GetAllPublishers handles GET /api/publishers.
func (controller *PublishersController) GetAllPublishers(c *gin.Context) {
	publishers, err := controller.catalog.GetAllPublishers()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, publishers)
}

// CreatePublisher handles POST /api/publishers.
func (controller *PublishersController) CreatePublisher(c *gin.Context) {
	var req CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	publisher := &entities.Publisher{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := controller.catalog.CreatePublisher(publisher); err != nil {
		respondStorageError(c, err)
		return
	}

	respondCreated(c, publisher)
}
