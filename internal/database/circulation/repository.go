// Package circulation provides database operations for branches, copies,
// members and loans.
//
// Copy status is derived state: creating a loan marks the copy "On Loan",
// recording a return or deleting the loan marks it "Available" again. Those
// side effects run in the same transaction as the loan write.
package circulation

import (
	"gorm.io/gorm"

	"github.com/openshelf/librarian/internal/entities"
)

// Repository handles circulation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new circulation repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// --- Branches ---

func (r *Repository) GetAllBranches() ([]entities.Branch, error) {
	var branches []entities.Branch
	err := r.db.Find(&branches).Error
	return branches, err
}

func (r *Repository) CreateBranch(branch *entities.Branch) error {
	return r.db.Create(branch).Error
}

func (r *Repository) BranchExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Branch{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// --- Copies ---

func (r *Repository) GetAllCopies() ([]entities.Copy, error) {
	var copies []entities.Copy
	err := r.db.Find(&copies).Error
	return copies, err
}

func (r *Repository) GetCopyByID(id uint) (*entities.Copy, error) {
	var copy entities.Copy
	if err := r.db.First(&copy, "copy_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &copy, nil
}

func (r *Repository) GetCopiesByStatus(status entities.CopyStatus) ([]entities.Copy, error) {
	var copies []entities.Copy
	err := r.db.Where("status = ?", status).Find(&copies).Error
	return copies, err
}

func (r *Repository) CopyExists(isbn int64, branchID uint, status entities.CopyStatus) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Copy{}).
		Where("isbn = ? AND branch_id = ? AND status = ?", isbn, branchID, status).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) SetCopyStatus(id uint, status entities.CopyStatus) error {
	return r.db.Model(&entities.Copy{}).Where("copy_id = ?", id).Update("status", status).Error
}

func (r *Repository) CreateCopy(copy *entities.Copy) error {
	if copy.Status == "" {
		copy.Status = entities.CopyStatusAvailable
	}
	return r.db.Create(copy).Error
}

func (r *Repository) UpdateCopy(id uint, copy *entities.Copy) error {
	return r.db.Model(&entities.Copy{}).Where("copy_id = ?", id).Updates(map[string]any{
		"isbn":      copy.ISBN,
		"branch_id": copy.BranchID,
		"status":    copy.Status,
	}).Error
}

func (r *Repository) DeleteCopy(id uint) error {
	return r.db.Delete(&entities.Copy{}, "copy_id = ?", id).Error
}

// --- Members ---

func (r *Repository) GetAllMembers() ([]entities.Member, error) {
	var members []entities.Member
	err := r.db.Find(&members).Error
	return members, err
}

func (r *Repository) CreateMember(member *entities.Member) error {
	if member.DateRegistered.IsZero() {
		member.DateRegistered = entities.Today()
	}
	return r.db.Create(member).Error
}

func (r *Repository) UpdateMember(id uint, member *entities.Member) error {
	return r.db.Model(&entities.Member{}).Where("member_id = ?", id).Updates(map[string]any{
		"first_name": member.FirstName,
		"last_name":  member.LastName,
		"email":      member.Email,
		"address":    member.Address,
		"phone":      member.Phone,
	}).Error
}

func (r *Repository) DeleteMember(id uint) error {
	return r.db.Delete(&entities.Member{}, "member_id = ?", id).Error
}

func (r *Repository) MemberExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Member{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// --- Loans ---

func (r *Repository) GetAllLoans() ([]entities.Loan, error) {
	var loans []entities.Loan
	err := r.db.Find(&loans).Error
	return loans, err
}

func (r *Repository) GetLoanByID(id uint) (*entities.Loan, error) {
	var loan entities.Loan
	if err := r.db.First(&loan, "loan_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

// CreateLoan inserts the loan and marks its copy "On Loan" atomically.
func (r *Repository) CreateLoan(loan *entities.Loan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loan).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Copy{}).
			Where("copy_id = ?", loan.CopyID).
			Update("status", entities.CopyStatusOnLoan).Error
	})
}

// UpdateLoan overwrites the loan's columns. When a return date is present the
// copy goes back to "Available" in the same transaction.
func (r *Repository) UpdateLoan(id uint, loan *entities.Loan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.Loan{}).Where("loan_id = ?", id).Updates(map[string]any{
			"copy_id":     loan.CopyID,
			"member_id":   loan.MemberID,
			"issue_date":  loan.IssueDate,
			"due_date":    loan.DueDate,
			"return_date": loan.ReturnDate,
			"fine_amount": loan.FineAmount,
		}).Error
		if err != nil {
			return err
		}
		if loan.ReturnDate != nil {
			return tx.Model(&entities.Copy{}).
				Where("copy_id = ?", loan.CopyID).
				Update("status", entities.CopyStatusAvailable).Error
		}
		return nil
	})
}

// DeleteLoan removes a single loan and frees its copy.
func (r *Repository) DeleteLoan(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var loan entities.Loan
		err := tx.First(&loan, "loan_id = ?", id).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Delete(&entities.Loan{}, "loan_id = ?", id).Error; err != nil {
			return err
		}

		if loan.CopyID != 0 {
			return tx.Model(&entities.Copy{}).
				Where("copy_id = ?", loan.CopyID).
				Update("status", entities.CopyStatusAvailable).Error
		}
		return nil
	})
}
