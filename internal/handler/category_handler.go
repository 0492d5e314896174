package handler

import (
	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

type NameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ListCategories returns all categories, name-ordered
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListAll()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, categories)
}

// CreateCategory adds a category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	actor := middleware.CurrentAdmin(c)
	category, err := h.categoryService.Create(actor, req.Name, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	actor := middleware.CurrentAdmin(c)
	category, err := h.categoryService.Update(actor, id, req.Name, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// DeleteCategory removes a category
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.categoryService.Delete(actor, id, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category deleted successfully"})
}
