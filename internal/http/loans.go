package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/circulation"
	"github.com/openshelf/librarian/internal/entities"
)

type LoansController struct {
	circulation *circulation.Repository
	export      ExportFunc
}

func NewLoansController(circulation *circulation.Repository, export ExportFunc) *LoansController {
	return &LoansController{circulation: circulation, export: export}
}

// GetAllLoans handles GET /api/loans.
func (controller *LoansController) GetAllLoans(c *gin.Context) {
	loans, err := controller.circulation.GetAllLoans()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

// CreateLoan handles POST /api/loans. The referenced copy is marked
// "On Loan" as part of the same write.
func (controller *LoansController) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	loan := &entities.Loan{
		CopyID:     req.CopyID,
		MemberID:   req.MemberID,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		FineAmount: req.FineAmount.Pointer(),
	}
	if err := controller.circulation.CreateLoan(loan); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "loans", "copies")
	respondCreated(c, loan)
}

// UpdateLoan handles PUT /api/loans/:id. Setting a return date frees the
// referenced copy back to "Available".
func (controller *LoansController) UpdateLoan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	loan := &entities.Loan{
		CopyID:     req.CopyID,
		MemberID:   req.MemberID,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		ReturnDate: req.ReturnDate,
		FineAmount: req.FineAmount.Pointer(),
	}
	if err := controller.circulation.UpdateLoan(id, loan); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "loans", "copies")
	c.JSON(http.StatusOK, gin.H{"message": "Loan updated"})
}

// DeleteLoan handles DELETE /api/loans/:id and frees the loan's copy.
func (controller *LoansController) DeleteLoan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.circulation.DeleteLoan(id); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "loans", "copies")
	c.JSON(http.StatusOK, gin.H{"message": "Loan deleted"})
}
