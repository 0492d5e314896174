package handler

import (
	"net/http"
	"strconv"

	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

type AdminCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=200"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminUpdateRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Name  *string `json:"name" binding:"omitempty,min=2,max=200"`
}

type AdminPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// ListAdmins returns all admin accounts
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.ListAll()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"admins": admins})
}

// CreateAdmin registers a new admin account
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req AdminCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	actor := middleware.CurrentAdmin(c)
	admin, err := h.adminService.Create(actor, req.Email, req.Name, req.Password, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"admin": admin})
}

// UpdateAdmin changes an admin's email and/or name
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}
	if req.Email == nil && req.Name == nil {
		utils.ValidationErrorResponse(c, map[string]string{"_error": "At least one field must be provided"})
		return
	}

	actor := middleware.CurrentAdmin(c)
	admin, err := h.adminService.Update(actor, id, req.Email, req.Name, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"admin": admin})
}

// ChangePassword sets a new password for an admin
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	actor := middleware.CurrentAdmin(c)
	if _, err := h.adminService.ChangePassword(actor, id, req.Password, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Password updated successfully"})
}

// ToggleAdminStatus activates or deactivates an admin account
func (h *AdminHandler) ToggleAdminStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	admin, err := h.adminService.ToggleStatus(actor, id, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"admin": admin})
}

// DeleteAdmin removes an admin account
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.adminService.Delete(actor, id, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Admin deleted successfully"})
}
