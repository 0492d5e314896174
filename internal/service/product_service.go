package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService owns the product and product-image lifecycle. Image files
// live in the external object store; rows reference them by URL. Uploads
// happen before the database transaction, external deletes after it —
// a failed external delete is logged and never fails the operation.
type ProductService struct {
	db           *gorm.DB
	productRepo  *repository.ProductRepository
	imageRepo    *repository.ProductImageRepository
	categoryRepo *repository.CategoryRepository
	tagRepo      *repository.TagRepository
	providerRepo *repository.ProviderRepository
	auditRepo    *repository.AuditRepository
	store        storage.ObjectStore
}

func NewProductService(
	db *gorm.DB,
	productRepo *repository.ProductRepository,
	imageRepo *repository.ProductImageRepository,
	categoryRepo *repository.CategoryRepository,
	tagRepo *repository.TagRepository,
	providerRepo *repository.ProviderRepository,
	auditRepo *repository.AuditRepository,
	store storage.ObjectStore,
) *ProductService {
	return &ProductService{
		db:           db,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		providerRepo: providerRepo,
		auditRepo:    auditRepo,
		store:        store,
	}
}

// ProductInput carries validated fields for creating a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryIDs []uint
	TagIDs      []uint
	ProviderIDs []uint
}

// ProductUpdateInput carries optional product changes; nil means unchanged.
// A non-nil ID slice replaces that relation set entirely.
type ProductUpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryIDs *[]uint
	TagIDs      *[]uint
	ProviderIDs *[]uint
}

// ListPaginated returns one page of products matching the filter
func (s *ProductService) ListPaginated(filter repository.ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	return s.productRepo.ListPaginated(filter, offset, limit)
}

// GetByID retrieves one product with relations
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) resolveCategories(ids []uint) ([]models.Category, error) {
	result := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		category, err := s.categoryRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				return nil, apperror.NotFound(fmt.Sprintf("Category with id %d not found", id))
			}
			return nil, err
		}
		result = append(result, *category)
	}
	return result, nil
}

func (s *ProductService) resolveTags(ids []uint) ([]models.Tag, error) {
	result := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		tag, err := s.tagRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				return nil, apperror.NotFound(fmt.Sprintf("Tag with id %d not found", id))
			}
			return nil, err
		}
		result = append(result, *tag)
	}
	return result, nil
}

func (s *ProductService) resolveProviders(ids []uint) ([]models.Provider, error) {
	result := make([]models.Provider, 0, len(ids))
	for _, id := range ids {
		provider, err := s.providerRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				return nil, apperror.NotFound(fmt.Sprintf("Provider with id %d not found", id))
			}
			return nil, err
		}
		result = append(result, *provider)
	}
	return result, nil
}

// uploadFiles pushes each valid image to the object store and returns the
// stored URLs. Files with a disallowed extension are skipped.
func (s *ProductService) uploadFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	var paths []string
	for _, fh := range files {
		if !storage.AllowedImage(fh.Filename) {
			log.Printf("Skipping upload with disallowed extension: %s", fh.Filename)
			continue
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
		}

		key := "products/" + uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
		url, err := s.store.Upload(ctx, key, storage.ContentTypeFor(fh.Filename), f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to store image %s: %w", fh.Filename, err)
		}
		paths = append(paths, url)
	}
	return paths, nil
}

// deleteStored removes an object from the external store, logging failures.
func (s *ProductService) deleteStored(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.store.Delete(ctx, path); err != nil {
		log.Printf("Failed to delete stored image %s: %v", path, err)
	}
}

// Create adds a product with zero or more images. The image at primaryIndex
// (clamped to the valid range) becomes primary and is mirrored into the
// legacy image path.
func (s *ProductService) Create(ctx context.Context, actor *models.Admin, input ProductInput, files []*multipart.FileHeader, primaryIndex int, ip string) (*models.Product, error) {
	categories, err := s.resolveCategories(input.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(input.TagIDs)
	if err != nil {
		return nil, err
	}
	providers, err := s.resolveProviders(input.ProviderIDs)
	if err != nil {
		return nil, err
	}

	paths, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	if primaryIndex < 0 || primaryIndex >= len(paths) {
		primaryIndex = 0
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Categories:  categories,
		Tags:        tags,
		Providers:   providers,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.WithTx(tx).Create(product); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		for i, path := range paths {
			image := &models.ProductImage{
				ProductID:    product.ID,
				ImagePath:    path,
				IsPrimary:    i == primaryIndex,
				DisplayOrder: i,
			}
			if err := s.imageRepo.WithTx(tx).Create(image); err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
		}
		if len(paths) > 0 {
			if err := s.productRepo.WithTx(tx).SetImagePath(product.ID, &paths[primaryIndex]); err != nil {
				return err
			}
		}

		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionCreate, "product", &product.ID,
			map[string]interface{}{"name": product.Name, "images": len(paths)}, ip)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(product.ID)
}

// Update applies allow-listed field changes and optional new images. With
// replaceImages, existing images are removed first (their stored files are
// deleted after commit); otherwise new images are appended after the current
// display order.
func (s *ProductService) Update(ctx context.Context, actor *models.Admin, id uint, input ProductUpdateInput, files []*multipart.FileHeader, replaceImages bool, ip string) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if input.CategoryIDs != nil {
		if categories, err = s.resolveCategories(*input.CategoryIDs); err != nil {
			return nil, err
		}
	}
	var tags []models.Tag
	if input.TagIDs != nil {
		if tags, err = s.resolveTags(*input.TagIDs); err != nil {
			return nil, err
		}
	}
	var providers []models.Provider
	if input.ProviderIDs != nil {
		if providers, err = s.resolveProviders(*input.ProviderIDs); err != nil {
			return nil, err
		}
	}

	paths, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
		product.Name = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}

	replacing := replaceImages && len(paths) > 0
	var oldPaths []string
	if replacing {
		for _, img := range product.Images {
			oldPaths = append(oldPaths, img.ImagePath)
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txProducts := s.productRepo.WithTx(tx)
		txImages := s.imageRepo.WithTx(tx)

		if err := txProducts.UpdateFields(id, fields); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		if input.CategoryIDs != nil {
			if err := txProducts.ReplaceCategories(product, categories); err != nil {
				return err
			}
		}
		if input.TagIDs != nil {
			if err := txProducts.ReplaceTags(product, tags); err != nil {
				return err
			}
		}
		if input.ProviderIDs != nil {
			if err := txProducts.ReplaceProviders(product, providers); err != nil {
				return err
			}
		}

		startOrder := 0
		hasPrimary := product.PrimaryImage() != nil
		if replacing {
			for _, img := range product.Images {
				if err := txImages.Delete(img.ID); err != nil {
					return err
				}
			}
			hasPrimary = false
		} else if len(product.Images) > 0 {
			startOrder = product.Images[len(product.Images)-1].DisplayOrder + 1
		}

		for i, path := range paths {
			image := &models.ProductImage{
				ProductID:    id,
				ImagePath:    path,
				IsPrimary:    !hasPrimary && i == 0,
				DisplayOrder: startOrder + i,
			}
			if err := txImages.Create(image); err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
		}
		if !hasPrimary && len(paths) > 0 {
			if err := txProducts.SetImagePath(id, &paths[0]); err != nil {
				return err
			}
		}

		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionUpdate, "product", &id,
			map[string]interface{}{"name": product.Name, "new_images": len(paths), "replaced_images": replacing}, ip)
	})
	if err != nil {
		return nil, err
	}

	for _, path := range oldPaths {
		s.deleteStored(ctx, path)
	}

	return s.GetByID(id)
}

// Delete removes a product, its relation rows and its images. Stored files
// are deleted best-effort after the database commit.
func (s *ProductService) Delete(ctx context.Context, actor *models.Admin, id uint, ip string) error {
	product, err := s.GetByID(id)
	if err != nil {
		return err
	}

	var paths []string
	for _, img := range product.Images {
		paths = append(paths, img.ImagePath)
	}
	if product.ImagePath != nil && product.PrimaryImage() == nil {
		paths = append(paths, *product.ImagePath)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.WithTx(tx).Delete(product); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionDelete, "product", &id,
			map[string]interface{}{"name": product.Name}, ip)
	})
	if err != nil {
		return err
	}

	for _, path := range paths {
		s.deleteStored(ctx, path)
	}
	return nil
}

// AddImages appends uploaded images to an existing product. The first image
// added to an imageless product becomes primary.
func (s *ProductService) AddImages(ctx context.Context, actor *models.Admin, productID uint, files []*multipart.FileHeader, ip string) (*models.Product, error) {
	product, err := s.GetByID(productID)
	if err != nil {
		return nil, err
	}

	paths, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, apperror.BadRequest("No valid image files provided")
	}

	maxOrder, err := s.imageRepo.MaxDisplayOrder(productID)
	if err != nil {
		return nil, err
	}
	startOrder := maxOrder + 1
	hasPrimary := product.PrimaryImage() != nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, path := range paths {
			image := &models.ProductImage{
				ProductID:    productID,
				ImagePath:    path,
				IsPrimary:    !hasPrimary && i == 0,
				DisplayOrder: startOrder + i,
			}
			if err := s.imageRepo.WithTx(tx).Create(image); err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
		}
		if !hasPrimary {
			if err := s.productRepo.WithTx(tx).SetImagePath(productID, &paths[0]); err != nil {
				return err
			}
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionCreate, "product_image", &productID,
			map[string]interface{}{"product_id": productID, "added": len(paths)}, ip)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(productID)
}

// SetPrimaryImage makes one image the primary: all images are demoted first,
// then the target is promoted and mirrored into the legacy image path.
func (s *ProductService) SetPrimaryImage(ctx context.Context, actor *models.Admin, productID, imageID uint, ip string) (*models.Product, error) {
	if _, err := s.GetByID(productID); err != nil {
		return nil, err
	}

	image, err := s.imageRepo.GetForProduct(productID, imageID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("Image not found")
		}
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txImages := s.imageRepo.WithTx(tx)
		if err := txImages.DemoteAll(productID); err != nil {
			return err
		}
		if err := txImages.Promote(imageID); err != nil {
			return err
		}
		if err := s.productRepo.WithTx(tx).SetImagePath(productID, &image.ImagePath); err != nil {
			return err
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionSetPrimaryImage, "product_image", &imageID,
			map[string]interface{}{"product_id": productID, "image_path": image.ImagePath}, ip)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(productID)
}

// DeleteImage removes one image. Deleting the last remaining image is
// rejected; deleting the primary promotes the next image by display order.
func (s *ProductService) DeleteImage(ctx context.Context, actor *models.Admin, productID, imageID uint, ip string) error {
	if _, err := s.GetByID(productID); err != nil {
		return err
	}

	image, err := s.imageRepo.GetForProduct(productID, imageID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperror.NotFound("Image not found")
		}
		return err
	}

	count, err := s.imageRepo.CountForProduct(productID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperror.BadRequest("Cannot delete the only image of a product")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txImages := s.imageRepo.WithTx(tx)
		if err := txImages.Delete(imageID); err != nil {
			return err
		}

		if image.IsPrimary {
			remaining, err := txImages.ListForProduct(productID)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				next := remaining[0]
				if err := txImages.Promote(next.ID); err != nil {
					return err
				}
				if err := s.productRepo.WithTx(tx).SetImagePath(productID, &next.ImagePath); err != nil {
					return err
				}
			}
		}

		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionDeleteImage, "product_image", &imageID,
			map[string]interface{}{"product_id": productID, "image_path": image.ImagePath}, ip)
	})
	if err != nil {
		return err
	}

	s.deleteStored(ctx, image.ImagePath)
	return nil
}
