// Package cascade implements application-level referential integrity for bulk
// deletes. The schema carries weak references only, so removing a parent row
// has to remove every row that points at it first.
//
// The dependency graph between tables is static:
//
//	publishers -> books -> copies -> loans
//	                 \-> book_authors
//	branches  -> copies -> loans
//	members   -> loans
//	authors   -> book_authors
//
// Each entity's delete plan walks its subgraph leaf-first inside a single
// transaction, so a failing step rolls back every delete made for the request.
package cascade

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/openshelf/librarian/internal/entities"
)

// Entity names the deletable entity types, matching the API path segments.
type Entity string

const (
	EntityBooks      Entity = "books"
	EntityMembers    Entity = "members"
	EntityLoans      Entity = "loans"
	EntityCopies     Entity = "copies"
	EntityBranches   Entity = "branches"
	EntityPublishers Entity = "publishers"
	EntityAuthors    Entity = "authors"
)

var (
	// ErrNoIDs is returned when a bulk delete is requested with no ids.
	ErrNoIDs = errors.New("no ids provided")

	// ErrUnknownEntity is returned for entity types without a delete plan.
	ErrUnknownEntity = errors.New("unknown entity type")
)

type planFunc func(tx *gorm.DB, ids []int64) error

// plans maps each entity to its leaf-first delete plan.
var plans = map[Entity]planFunc{
	EntityBooks:      deleteBooks,
	EntityMembers:    deleteMembers,
	EntityLoans:      deleteLoans,
	EntityCopies:     deleteCopies,
	EntityBranches:   deleteBranches,
	EntityPublishers: deletePublishers,
	EntityAuthors:    deleteAuthors,
}

// exportTables lists the denormalized exports to refresh after each entity's
// bulk delete commits.
var exportTables = map[Entity][]string{
	EntityBooks:   {"books"},
	EntityMembers: {"members"},
	EntityLoans:   {"loans", "copies"},
	EntityCopies:  {"copies"},
}

// ExportTables returns the table exports to refresh after a bulk delete of the
// given entity. Entities whose tables have no export return nil.
func ExportTables(entity Entity) []string {
	return exportTables[entity]
}

// Engine executes bulk deletes with application-level cascading.
type Engine struct {
	db *gorm.DB
}

// NewEngine creates a cascade delete engine on top of db.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// BulkDelete removes the identified entities together with every dependent
// row, atomically. It reports the number of requested ids on success.
func (e *Engine) BulkDelete(entity Entity, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}

	plan, ok := plans[entity]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		return plan(tx, ids)
	})
	if err != nil {
		return 0, err
	}

	return int64(len(ids)), nil
}

// deleteBooks removes loans, copies and author links under the given isbns
// before the books themselves.
func deleteBooks(tx *gorm.DB, isbns []int64) error {
	copyIDs, err := copyIDsByISBN(tx, isbns)
	if err != nil {
		return err
	}
	if len(copyIDs) > 0 {
		if err := tx.Delete(&entities.Loan{}, "copy_id IN ?", copyIDs).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Copy{}, "copy_id IN ?", copyIDs).Error; err != nil {
			return err
		}
	}
	if err := tx.Delete(&entities.BookAuthor{}, "isbn IN ?", isbns).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Book{}, "isbn IN ?", isbns).Error
}

// deletePublishers resolves the publishers' books and runs the book plan on
// them before removing the publishers.
func deletePublishers(tx *gorm.DB, ids []int64) error {
	var isbns []int64
	err := tx.Model(&entities.Book{}).
		Where("publisher_id IN ?", ids).
		Pluck("isbn", &isbns).Error
	if err != nil {
		return err
	}
	if len(isbns) > 0 {
		if err := deleteBooks(tx, isbns); err != nil {
			return err
		}
	}
	return tx.Delete(&entities.Publisher{}, "publisher_id IN ?", ids).Error
}

func deleteBranches(tx *gorm.DB, ids []int64) error {
	var copyIDs []int64
	err := tx.Model(&entities.Copy{}).
		Where("branch_id IN ?", ids).
		Pluck("copy_id", &copyIDs).Error
	if err != nil {
		return err
	}
	if len(copyIDs) > 0 {
		if err := tx.Delete(&entities.Loan{}, "copy_id IN ?", copyIDs).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Copy{}, "copy_id IN ?", copyIDs).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&entities.Branch{}, "branch_id IN ?", ids).Error
}

func deleteMembers(tx *gorm.DB, ids []int64) error {
	if err := tx.Delete(&entities.Loan{}, "member_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Member{}, "member_id IN ?", ids).Error
}

func deleteCopies(tx *gorm.DB, ids []int64) error {
	if err := tx.Delete(&entities.Loan{}, "copy_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Copy{}, "copy_id IN ?", ids).Error
}

// deleteLoans removes the loans and frees their copies. The copies survive
// this path, so their status has to flip back to "Available" explicitly.
func deleteLoans(tx *gorm.DB, ids []int64) error {
	var copyIDs []int64
	err := tx.Model(&entities.Loan{}).
		Where("loan_id IN ?", ids).
		Pluck("copy_id", &copyIDs).Error
	if err != nil {
		return err
	}
	if err := tx.Delete(&entities.Loan{}, "loan_id IN ?", ids).Error; err != nil {
		return err
	}
	if len(copyIDs) > 0 {
		err := tx.Model(&entities.Copy{}).
			Where("copy_id IN ?", copyIDs).
			Update("status", entities.CopyStatusAvailable).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func deleteAuthors(tx *gorm.DB, ids []int64) error {
	if err := tx.Delete(&entities.BookAuthor{}, "author_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Author{}, "author_id IN ?", ids).Error
}

func copyIDsByISBN(tx *gorm.DB, isbns []int64) ([]int64, error) {
	var copyIDs []int64
	err := tx.Model(&entities.Copy{}).
		Where("isbn IN ?", isbns).
		Pluck("copy_id", &copyIDs).Error
	return copyIDs, err
}
