package repository

import (
	"errors"
	"strings"

	"catalog-admin-backend/internal/models"

	"gorm.io/gorm"
)

// ProductFilter narrows a product listing. ID sets are OR-combined within
// a set and AND-combined across sets; Search matches the name
// case-insensitively.
type ProductFilter struct {
	CategoryIDs []uint
	TagIDs      []uint
	ProviderIDs []uint
	Search      string
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

func (r *ProductRepository) preload(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Categories").
		Preload("Tags").
		Preload("Providers").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		})
}

func (r *ProductRepository) applyFilter(query *gorm.DB, filter ProductFilter) *gorm.DB {
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("products.id IN (?)",
			r.db.Table("product_categories").Select("product_id").Where("category_id IN ?", filter.CategoryIDs))
	}
	if len(filter.TagIDs) > 0 {
		query = query.Where("products.id IN (?)",
			r.db.Table("product_tags").Select("product_id").Where("tag_id IN ?", filter.TagIDs))
	}
	if len(filter.ProviderIDs) > 0 {
		query = query.Where("products.id IN (?)",
			r.db.Table("product_providers").Select("product_id").Where("provider_id IN ?", filter.ProviderIDs))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return query
}

// ListPaginated returns one page of products matching the filter, name-ordered,
// along with the total match count.
func (r *ProductRepository) ListPaginated(filter ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.Model(&models.Product{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	query := r.applyFilter(r.db.Model(&models.Product{}), filter)
	err := r.preload(query).
		Order("products.name ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

// GetByID retrieves a product with all relations preloaded
func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.preload(r.db).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product together with its relation rows
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// UpdateFields applies an allow-listed set of column updates
func (r *ProductRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceCategories swaps the product's category set
func (r *ProductRepository) ReplaceCategories(product *models.Product, categories []models.Category) error {
	return r.db.Model(product).Association("Categories").Replace(categories)
}

// ReplaceTags swaps the product's tag set
func (r *ProductRepository) ReplaceTags(product *models.Product, tags []models.Tag) error {
	return r.db.Model(product).Association("Tags").Replace(tags)
}

// ReplaceProviders swaps the product's provider set
func (r *ProductRepository) ReplaceProviders(product *models.Product, providers []models.Provider) error {
	return r.db.Model(product).Association("Providers").Replace(providers)
}

// SetImagePath updates the legacy single-image mirror column
func (r *ProductRepository) SetImagePath(id uint, path *string) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("image_path", path).Error
}

// Delete removes a product, its join rows and its image rows
func (r *ProductRepository) Delete(product *models.Product) error {
	if err := r.db.Model(product).Association("Categories").Clear(); err != nil {
		return err
	}
	if err := r.db.Model(product).Association("Tags").Clear(); err != nil {
		return err
	}
	if err := r.db.Model(product).Association("Providers").Clear(); err != nil {
		return err
	}
	if err := r.db.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	return r.db.Delete(product).Error
}
