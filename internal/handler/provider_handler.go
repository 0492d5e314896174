package handler

import (
	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	providerService *service.ProviderService
}

func NewProviderHandler(providerService *service.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
	}
}

type ProviderCreateRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Contact     string `json:"contact" binding:"omitempty,max=200"`
	Phone       string `json:"phone" binding:"omitempty,max=50"`
	Description string `json:"description"`
}

type ProviderUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Contact     *string `json:"contact" binding:"omitempty,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Description *string `json:"description"`
}

// ListProviders returns all providers, name-ordered
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.providerService.ListAll()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, providers)
}

// CreateProvider adds a provider
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req ProviderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	provider := &models.Provider{
		Name:        req.Name,
		Contact:     req.Contact,
		Phone:       req.Phone,
		Description: req.Description,
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.providerService.Create(actor, provider, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, provider)
}

// UpdateProvider applies field changes to a provider
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProviderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.BindingErrors(err))
		return
	}

	actor := middleware.CurrentAdmin(c)
	provider, err := h.providerService.Update(actor, id, service.ProviderUpdate{
		Name:        req.Name,
		Contact:     req.Contact,
		Phone:       req.Phone,
		Description: req.Description,
	}, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, provider)
}

// DeleteProvider removes a provider
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.providerService.Delete(actor, id, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Provider deleted successfully"})
}
