package repository

import (
	"errors"

	"catalog-admin-backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *AdminRepository) WithTx(tx *gorm.DB) *AdminRepository {
	return &AdminRepository{db: tx}
}

// GetAll retrieves all admins, newest first
func (r *AdminRepository) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Order("created_at DESC").Find(&admins).Error
	return admins, err
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new admin
func (r *AdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// UpdateFields applies an allow-listed set of column updates
func (r *AdminRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes an admin row
func (r *AdminRepository) Delete(id uint) error {
	return r.db.Delete(&models.Admin{}, id).Error
}
