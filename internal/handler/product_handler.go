package handler

import (
	"mime/multipart"
	"strconv"

	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	CategoryIDs []uint  `json:"category_ids"`
	TagIDs      []uint  `json:"tag_ids"`
	ProviderIDs []uint  `json:"provider_ids"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	CategoryIDs *[]uint  `json:"category_ids"`
	TagIDs      *[]uint  `json:"tag_ids"`
	ProviderIDs *[]uint  `json:"provider_ids"`
}

func filterFromQuery(c *gin.Context) repository.ProductFilter {
	return repository.ProductFilter{
		CategoryIDs: utils.QueryUintList(c, "category_id"),
		TagIDs:      utils.QueryUintList(c, "tag_id"),
		ProviderIDs: utils.QueryUintList(c, "provider_id"),
		Search:      c.Query("search"),
	}
}

func formUintList(values []string, fieldErrors map[string]string, field string) []uint {
	ids := make([]uint, 0, len(values))
	for _, raw := range values {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fieldErrors[field] = "Must be a list of valid ids"
			return nil
		}
		ids = append(ids, uint(id))
	}
	return ids
}

func (h *ProductHandler) listProducts(c *gin.Context, adminFields bool) {
	p := utils.ParsePagination(c)

	products, total, err := h.productService.ListPaginated(filterFromQuery(c), p.Offset(), p.PerPage)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, serializeProducts(products, adminFields), total, p)
}

func (h *ProductHandler) getProduct(c *gin.Context, adminFields bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, serializeProduct(product, adminFields))
}

// ListPublicProducts returns the public catalog page: no price, no providers
func (h *ProductHandler) ListPublicProducts(c *gin.Context) {
	h.listProducts(c, false)
}

// GetPublicProduct returns one product in its public shape
func (h *ProductHandler) GetPublicProduct(c *gin.Context) {
	h.getProduct(c, false)
}

// ListAdminProducts returns the full catalog page including price and providers
func (h *ProductHandler) ListAdminProducts(c *gin.Context) {
	h.listProducts(c, true)
}

// GetAdminProduct returns one product with all fields
func (h *ProductHandler) GetAdminProduct(c *gin.Context) {
	h.getProduct(c, true)
}

// CreateProduct adds a product from a JSON body or a multipart form with
// image files under "images" and an optional "primary_index" field
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	var files []*multipart.FileHeader
	primaryIndex := 0

	if c.ContentType() == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			utils.ValidationErrorResponse(c, map[string]string{"_error": "Invalid multipart form"})
			return
		}

		fieldErrors := map[string]string{}
		input.Name = c.PostForm("name")
		if input.Name == "" {
			fieldErrors["name"] = "This field is required"
		}
		input.Description = c.PostForm("description")

		priceRaw := c.PostForm("price")
		if priceRaw == "" {
			fieldErrors["price"] = "This field is required"
		} else if price, err := strconv.ParseFloat(priceRaw, 64); err != nil || price < 0 {
			fieldErrors["price"] = "Must be a non-negative number"
		} else {
			input.Price = price
		}

		input.CategoryIDs = formUintList(form.Value["category_ids"], fieldErrors, "category_ids")
		input.TagIDs = formUintList(form.Value["tag_ids"], fieldErrors, "tag_ids")
		input.ProviderIDs = formUintList(form.Value["provider_ids"], fieldErrors, "provider_ids")

		if raw := c.PostForm("primary_index"); raw != "" {
			if idx, err := strconv.Atoi(raw); err == nil {
				primaryIndex = idx
			}
		}

		if len(fieldErrors) > 0 {
			utils.ValidationErrorResponse(c, fieldErrors)
			return
		}
		files = form.File["images"]
	} else {
		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationErrorResponse(c, utils.BindingErrors(err))
			return
		}
		input = service.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			CategoryIDs: req.CategoryIDs,
			TagIDs:      req.TagIDs,
			ProviderIDs: req.ProviderIDs,
		}
	}

	actor := middleware.CurrentAdmin(c)
	product, err := h.productService.Create(c.Request.Context(), actor, input, files, primaryIndex, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, serializeProduct(product, true))
}

// UpdateProduct applies field changes from a JSON body or a multipart form.
// New image files are appended, or replace the existing set when the
// "replace_images" field is true.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.ProductUpdateInput
	var files []*multipart.FileHeader
	replaceImages := false

	if c.ContentType() == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			utils.ValidationErrorResponse(c, map[string]string{"_error": "Invalid multipart form"})
			return
		}

		fieldErrors := map[string]string{}
		if values, ok := form.Value["name"]; ok && len(values) > 0 {
			input.Name = &values[0]
		}
		if values, ok := form.Value["description"]; ok && len(values) > 0 {
			input.Description = &values[0]
		}
		if values, ok := form.Value["price"]; ok && len(values) > 0 {
			price, err := strconv.ParseFloat(values[0], 64)
			if err != nil || price < 0 {
				fieldErrors["price"] = "Must be a non-negative number"
			} else {
				input.Price = &price
			}
		}
		if _, ok := form.Value["category_ids"]; ok {
			ids := formUintList(form.Value["category_ids"], fieldErrors, "category_ids")
			input.CategoryIDs = &ids
		}
		if _, ok := form.Value["tag_ids"]; ok {
			ids := formUintList(form.Value["tag_ids"], fieldErrors, "tag_ids")
			input.TagIDs = &ids
		}
		if _, ok := form.Value["provider_ids"]; ok {
			ids := formUintList(form.Value["provider_ids"], fieldErrors, "provider_ids")
			input.ProviderIDs = &ids
		}
		if raw := c.PostForm("replace_images"); raw != "" {
			replaceImages, _ = strconv.ParseBool(raw)
		}

		if len(fieldErrors) > 0 {
			utils.ValidationErrorResponse(c, fieldErrors)
			return
		}
		files = form.File["images"]
	} else {
		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ValidationErrorResponse(c, utils.BindingErrors(err))
			return
		}
		input = service.ProductUpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			CategoryIDs: req.CategoryIDs,
			TagIDs:      req.TagIDs,
			ProviderIDs: req.ProviderIDs,
		}
	}

	actor := middleware.CurrentAdmin(c)
	product, err := h.productService.Update(c.Request.Context(), actor, id, input, files, replaceImages, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, serializeProduct(product, true))
}

// DeleteProduct removes a product and its images
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.productService.Delete(c.Request.Context(), actor, id, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted successfully"})
}

// AddProductImages appends uploaded files under "images" to a product
func (h *ProductHandler) AddProductImages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ValidationErrorResponse(c, map[string]string{"_error": "Invalid multipart form"})
		return
	}

	actor := middleware.CurrentAdmin(c)
	product, err := h.productService.AddImages(c.Request.Context(), actor, id, form.File["images"], c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, serializeProduct(product, true))
}

// SetPrimaryProductImage promotes one image to primary
func (h *ProductHandler) SetPrimaryProductImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageID")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	product, err := h.productService.SetPrimaryImage(c.Request.Context(), actor, id, imageID, c.ClientIP())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, serializeProduct(product, true))
}

// DeleteProductImage removes one image from a product
func (h *ProductHandler) DeleteProductImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageID")
	if !ok {
		return
	}

	actor := middleware.CurrentAdmin(c)
	if err := h.productService.DeleteImage(c.Request.Context(), actor, id, imageID, c.ClientIP()); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Image deleted successfully"})
}
