package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/catalog"
	"github.com/openshelf/librarian/internal/entities"
)

type BooksController struct {
	catalog *catalog.Repository
	export  ExportFunc
}

func NewBooksController(catalog *catalog.Repository, export ExportFunc) *BooksController {
	return &BooksController{catalog: catalog, export: export}
}

// GetAllBooks handles GET /api/books.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.catalog.GetAllBooks()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// CreateBook handles POST /api/books.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book := &entities.Book{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Genre:           req.Genre,
		PublisherID:     req.PublisherID,
		PublicationYear: req.PublicationYear,
	}
	if err := controller.catalog.CreateBook(book); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "books")
	respondCreated(c, book)
}

// UpdateBook handles PUT /api/books/:isbn.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	isbn, ok := parseISBNParam(c, "isbn")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book := &entities.Book{
		Title:           req.Title,
		Genre:           req.Genre,
		PublisherID:     req.PublisherID,
		PublicationYear: req.PublicationYear,
	}
	if err := controller.catalog.UpdateBook(isbn, book); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "books")
	c.JSON(http.StatusOK, gin.H{"message": "Book updated"})
}

// DeleteBook handles DELETE /api/books/:isbn. This is a direct delete with no
// cascade; bulk delete is the cascading path.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	isbn, ok := parseISBNParam(c, "isbn")
	if !ok {
		return
	}

	if err := controller.catalog.DeleteBook(isbn); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "books")
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}
