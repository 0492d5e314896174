package repository

import (
	"errors"

	"catalog-admin-backend/internal/models"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepo(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProviderRepository) WithTx(tx *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: tx}
}

// GetAll retrieves all providers ordered by name
func (r *ProviderRepository) GetAll() ([]models.Provider, error) {
	var providers []models.Provider
	err := r.db.Order("name ASC").Find(&providers).Error
	return providers, err
}

// GetByID retrieves a provider by ID
func (r *ProviderRepository) GetByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.First(&provider, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &provider, nil
}

// Create inserts a new provider
func (r *ProviderRepository) Create(provider *models.Provider) error {
	return r.db.Create(provider).Error
}

// UpdateFields applies an allow-listed set of column updates
func (r *ProviderRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Provider{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a provider
func (r *ProviderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Provider{}, id).Error
}
