// Package catalog provides database operations for the bibliographic side of
// the schema: books, publishers, authors and the book-author links.
package catalog

import (
	"gorm.io/gorm"

	"github.com/openshelf/librarian/internal/entities"
)

// Repository handles catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// --- Books ---

func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

func (r *Repository) GetBookByISBN(isbn int64) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, "isbn = ?", isbn).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *Repository) BookExists(isbn int64) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("isbn = ?", isbn).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// UpdateBook overwrites the mutable columns of the book identified by isbn.
func (r *Repository) UpdateBook(isbn int64, book *entities.Book) error {
	return r.db.Model(&entities.Book{}).Where("isbn = ?", isbn).Updates(map[string]any{
		"title":            book.Title,
		"genre":            book.Genre,
		"publisher_id":     book.PublisherID,
		"publication_year": book.PublicationYear,
	}).Error
}

func (r *Repository) DeleteBook(isbn int64) error {
	return r.db.Delete(&entities.Book{}, "isbn = ?", isbn).Error
}

// --- Publishers ---

func (r *Repository) GetAllPublishers() ([]entities.Publisher, error) {
	var publishers []entities.Publisher
	err := r.db.Find(&publishers).Error
	return publishers, err
}

func (r *Repository) CreatePublisher(publisher *entities.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *Repository) PublisherExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Publisher{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// --- Authors ---

func (r *Repository) GetAllAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Find(&authors).Error
	return authors, err
}

func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

func (r *Repository) AuthorExistsByName(firstName, lastName string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Count(&count).Error
	return count > 0, err
}

// LinkAuthor attaches an author to a book.
func (r *Repository) LinkAuthor(isbn int64, authorID uint) error {
	return r.db.Create(&entities.BookAuthor{ISBN: isbn, AuthorID: authorID}).Error
}

// GetAuthorsForBook returns the authors linked to the given book.
func (r *Repository) GetAuthorsForBook(isbn int64) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.
		Joins("JOIN book_authors ON book_authors.author_id = authors.author_id").
		Where("book_authors.isbn = ?", isbn).
		Find(&authors).Error
	return authors, err
}
