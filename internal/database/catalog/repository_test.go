package catalog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/librarian/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_catalog_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Publisher{},
		&entities.Author{},
		&entities.Book{},
		&entities.BookAuthor{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestCreateAndGetBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	publisher := entities.Publisher{Name: "Hardcase Press"}
	require.NoError(t, repo.CreatePublisher(&publisher))

	book := entities.Book{
		ISBN:            9000000001,
		Title:           "Night Shift",
		Genre:           "Horror",
		PublisherID:     publisher.ID,
		PublicationYear: 1978,
	}
	require.NoError(t, repo.CreateBook(&book))

	stored, err := repo.GetBookByISBN(9000000001)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Night Shift", stored.Title)
	assert.Equal(t, publisher.ID, stored.PublisherID)

	exists, err := repo.BookExists(9000000001)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.BookExists(9000000002)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := entities.Book{ISBN: 9000000001, Title: "Draft", Genre: "Fiction"}
	require.NoError(t, repo.CreateBook(&book))

	updated := entities.Book{
		Title:           "Final",
		Genre:           "Mystery",
		PublicationYear: 2020,
	}
	require.NoError(t, repo.UpdateBook(9000000001, &updated))

	stored, err := repo.GetBookByISBN(9000000001)
	require.NoError(t, err)
	assert.Equal(t, "Final", stored.Title)
	assert.Equal(t, "Mystery", stored.Genre)
	assert.Equal(t, 2020, stored.PublicationYear)
}

func TestDeleteBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := entities.Book{ISBN: 9000000001, Title: "Gone"}
	require.NoError(t, repo.CreateBook(&book))

	require.NoError(t, repo.DeleteBook(9000000001))

	exists, err := repo.BookExists(9000000001)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPublisherExistsByName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.CreatePublisher(&entities.Publisher{Name: "Hardcase Press"}))

	exists, err := repo.PublisherExistsByName("Hardcase Press")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.PublisherExistsByName("Unknown House")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLinkAuthorAndGetAuthorsForBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := entities.Book{ISBN: 9000000001, Title: "Paired"}
	require.NoError(t, repo.CreateBook(&book))

	first := entities.Author{FirstName: "Iris", LastName: "Quine"}
	require.NoError(t, repo.CreateAuthor(&first))
	second := entities.Author{FirstName: "Max", LastName: "Holt"}
	require.NoError(t, repo.CreateAuthor(&second))

	require.NoError(t, repo.LinkAuthor(book.ISBN, first.ID))
	require.NoError(t, repo.LinkAuthor(book.ISBN, second.ID))

	authors, err := repo.GetAuthorsForBook(book.ISBN)
	require.NoError(t, err)
	require.Len(t, authors, 2)

	exists, err := repo.AuthorExistsByName("Iris", "Quine")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.AuthorExistsByName("Iris", "Nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}
