package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/circulation"
	"github.com/openshelf/librarian/internal/entities"
)

type MembersController struct {
	circulation *circulation.Repository
	export      ExportFunc
}

func NewMembersController(circulation *circulation.Repository, export ExportFunc) *MembersController {
	return &MembersController{circulation: circulation, export: export}
}

// GetAllMembers handles GET /api/members.
func (controller *MembersController) GetAllMembers(c *gin.Context) {
	members, err := controller.circulation.GetAllMembers()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember handles POST /api/members. The registration date is always
// server-assigned.
func (controller *MembersController) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	member := &entities.Member{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Address:        req.Address,
		Phone:          req.Phone,
		DateRegistered: entities.Today(),
	}
	if err := controller.circulation.CreateMember(member); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "members")
	respondCreated(c, member)
}

// UpdateMember handles PUT /api/members/:id.
func (controller *MembersController) UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	member := &entities.Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
	}
	if err := controller.circulation.UpdateMember(id, member); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "members")
	c.JSON(http.StatusOK, gin.H{"message": "Member updated"})
}

// DeleteMember handles DELETE /api/members/:id. This is a direct delete with
// no cascade; bulk delete is the cascading path.
func (controller *MembersController) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.circulation.DeleteMember(id); err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "members")
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
