package repository

import (
	"errors"

	"catalog-admin-backend/internal/models"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *TagRepository) WithTx(tx *gorm.DB) *TagRepository {
	return &TagRepository{db: tx}
}

// GetAll retrieves all tags ordered by name
func (r *TagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// GetByID retrieves a tag by ID
func (r *TagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by exact name match
func (r *TagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// Create inserts a new tag
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// UpdateName renames a tag
func (r *TagRepository) UpdateName(id uint, name string) error {
	return r.db.Model(&models.Tag{}).Where("id = ?", id).Update("name", name).Error
}

// Delete removes a tag
func (r *TagRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tag{}, id).Error
}
