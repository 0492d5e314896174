package handler

import (
	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *service.AuthService
	auditService *service.AuditService
}

func NewAuthHandler(authService *service.AuthService, auditService *service.AuditService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin and returns a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	response, err := h.authService.Login(req.Email, req.Password, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, response)
}

// Me returns the authenticated admin's profile
func (h *AuthHandler) Me(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	utils.SuccessResponse(c, gin.H{
		"id":        admin.ID,
		"email":     admin.Email,
		"name":      admin.Name,
		"is_active": admin.IsActive,
	})
}

// ListAuditLogs returns the audit trail, newest first
func (h *AuthHandler) ListAuditLogs(c *gin.Context) {
	p := utils.ParsePagination(c)

	entries, total, err := h.auditService.ListPaginated(p.Offset(), p.PerPage)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, entries, total, p)
}
