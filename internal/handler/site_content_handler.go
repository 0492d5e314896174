package handler

import (
	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SiteContentHandler struct {
	contentService *service.SiteContentService
}

func NewSiteContentHandler(contentService *service.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{
		contentService: contentService,
	}
}

type SiteContentUpdateRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
}

// GetContent returns the content block for a key, creating an empty one on
// first read
func (h *SiteContentHandler) GetContent(c *gin.Context) {
	content, err := h.contentService.GetOrCreate(c.Param("key"))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, content)
}

// UpdateContent changes a content block's title and/or body
func (h *SiteContentHandler) UpdateContent(c *gin.Context) {
	var req SiteContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}
	if req.Title == nil && req.Content == nil {
		utils.ValidationErrorResponse(c, map[string]string{"_error": "At least one field must be provided"})
		return
	}

	actor := middleware.CurrentAdmin(c)
	content, err := h.contentService.Update(actor, c.Param("key"), req.Title, req.Content, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, content)
}
