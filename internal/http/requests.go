package http

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/openshelf/librarian/internal/entities"
)

// Typed request records, one per write endpoint. Required fields carry
// binding tags; anything else is optional and defaults to its zero value.

type CreateBookRequest struct {
	ISBN            int64  `json:"isbn" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Genre           string `json:"genre"`
	PublisherID     uint   `json:"publisher_id"`
	PublicationYear int    `json:"publication_year"`
}

type UpdateBookRequest struct {
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	PublisherID     uint   `json:"publisher_id"`
	PublicationYear int    `json:"publication_year"`
}

type CreatePublisherRequest struct {
	Name    string `json:"publisher_name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type CreateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type CreateBranchRequest struct {
	Name     string `json:"branch_name" binding:"required"`
	Location string `json:"location"`
}

type CreateMemberRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type UpdateMemberRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type CreateCopyRequest struct {
	ISBN     int64               `json:"isbn" binding:"required"`
	BranchID uint                `json:"branch_id" binding:"required"`
	Status   entities.CopyStatus `json:"status"`
}

type UpdateCopyRequest struct {
	ISBN     int64               `json:"isbn"`
	BranchID uint                `json:"branch_id"`
	Status   entities.CopyStatus `json:"status"`
}

type CreateLoanRequest struct {
	CopyID     uint           `json:"copy_id" binding:"required"`
	MemberID   uint           `json:"member_id" binding:"required"`
	IssueDate  entities.Date  `json:"issue_date" binding:"required"`
	DueDate    entities.Date  `json:"due_date" binding:"required"`
	FineAmount FlexibleAmount `json:"fine_amount"`
}

type UpdateLoanRequest struct {
	CopyID     uint           `json:"copy_id"`
	MemberID   uint           `json:"member_id"`
	IssueDate  entities.Date  `json:"issue_date"`
	DueDate    entities.Date  `json:"due_date"`
	ReturnDate *entities.Date `json:"return_date"`
	FineAmount FlexibleAmount `json:"fine_amount"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// FlexibleAmount is a lenient non-negative money field. Clients send fines as
// numbers, numeric strings, empty strings or null; anything unparseable or
// negative is treated as absent rather than rejected.
type FlexibleAmount struct {
	value *float64
}

// Pointer returns the parsed amount, or nil when absent.
func (a FlexibleAmount) Pointer() *float64 {
	return a.value
}

func (a *FlexibleAmount) UnmarshalJSON(b []byte) error {
	a.value = nil

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(b, &number); err == nil {
		a.set(number)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			a.set(parsed)
		}
	}
	return nil
}

func (a *FlexibleAmount) set(v float64) {
	if v < 0 {
		return
	}
	a.value = &v
}
