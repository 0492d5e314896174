package handler

import (
	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags returns all tags, name-ordered
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListAll()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, tags)
}

// CreateTag adds a tag
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	actor := middleware.CurrentAdmin(c)
	tag, err := h.tagService.Create(actor, req.Name, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, tag)
}

// UpdateTag renames a tag
func (h *TagHandler) UpdateTag(c *gin.Context) {
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
	tag, err := h.tagService.Update(actor, id, req.Name, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, tag)
}

// DeleteTag removes a tag
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.tagService.Delete(actor, id, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Tag deleted successfully"})
}
