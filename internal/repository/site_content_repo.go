package repository

import (
	"errors"

	"catalog-admin-backend/internal/models"

	"gorm.io/gorm"
)

type SiteContentRepository struct {
	db *gorm.DB
}

func NewSiteContentRepo(db *gorm.DB) *SiteContentRepository {
	return &SiteContentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *SiteContentRepository) WithTx(tx *gorm.DB) *SiteContentRepository {
	return &SiteContentRepository{db: tx}
}

// GetByKey retrieves a content block by its key
func (r *SiteContentRepository) GetByKey(key string) (*models.SiteContent, error) {
	var content models.SiteContent
	err := r.db.Where("`key` = ?", key).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// Create inserts a content block
func (r *SiteContentRepository) Create(content *models.SiteContent) error {
	return r.db.Create(content).Error
}

// UpdateFields applies an allow-listed set of column updates
func (r *SiteContentRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.SiteContent{}).Where("id = ?", id).Updates(fields).Error
}
