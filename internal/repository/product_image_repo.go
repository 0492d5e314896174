package repository

import (
	"errors"

	"catalog-admin-backend/internal/models"

	"gorm.io/gorm"
)

type ProductImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepo(db *gorm.DB) *ProductImageRepository {
	return &ProductImageRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProductImageRepository) WithTx(tx *gorm.DB) *ProductImageRepository {
	return &ProductImageRepository{db: tx}
}

// GetForProduct retrieves one image belonging to the given product
func (r *ProductImageRepository) GetForProduct(productID, imageID uint) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.Where("id = ? AND product_id = ?", imageID, productID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// ListForProduct retrieves a product's images in display order
func (r *ProductImageRepository) ListForProduct(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).Order("display_order ASC").Find(&images).Error
	return images, err
}

// CountForProduct counts a product's images
func (r *ProductImageRepository) CountForProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// MaxDisplayOrder returns the highest display order in use, or -1 when the
// product has no images.
func (r *ProductImageRepository) MaxDisplayOrder(productID uint) (int, error) {
	var max *int
	err := r.db.Model(&models.ProductImage{}).
		Where("product_id = ?", productID).
		Select("MAX(display_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// Create inserts an image row
func (r *ProductImageRepository) Create(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

// DemoteAll clears the primary flag on all of a product's images
func (r *ProductImageRepository) DemoteAll(productID uint) error {
	return r.db.Model(&models.ProductImage{}).
		Where("product_id = ?", productID).
		Update("is_primary", false).Error
}

// Promote marks one image as primary
func (r *ProductImageRepository) Promote(imageID uint) error {
	return r.db.Model(&models.ProductImage{}).
		Where("id = ?", imageID).
		Update("is_primary", true).Error
}

// Delete removes an image row
func (r *ProductImageRepository) Delete(imageID uint) error {
	return r.db.Delete(&models.ProductImage{}, imageID).Error
}
