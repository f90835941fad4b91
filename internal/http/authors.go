package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/catalog"
	"github.com/openshelf/librarian/internal/entities"
)

type AuthorsController struct {
	catalog *catalog.Repository
}

func NewAuthorsController(catalog *catalog.Repository) *AuthorsController {
	return &AuthorsController{catalog: catalog}
}

// GetAllAuthors handles GET /api/authors.
func (controller *AuthorsController) GetAllAuthors(c *gin.Context) {
	authors, err := controller.catalog.GetAllAuthors()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// CreateAuthor handles POST /api/authors.
func (controller *AuthorsController) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	author := &entities.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := controller.catalog.CreateAuthor(author); err != nil {
		respondStorageError(c, err)
		return
	}

	respondCreated(c, author)
}
