package service

import (
	"fmt"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	db           *gorm.DB
	categoryRepo *repository.CategoryRepository
	auditRepo    *repository.AuditRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo *repository.CategoryRepository, auditRepo *repository.AuditRepository) *CategoryService {
	return &CategoryService{
		db:           db,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
	}
}

// ListAll retrieves all categories ordered by name
func (s *CategoryService) ListAll() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetByID retrieves one category
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, err
	}
	return category, nil
}

// Create adds a category. Names collide case-sensitively.
func (s *CategoryService) Create(actor *models.Admin, name, ip string) (*models.Category, error) {
	if existing, err := s.categoryRepo.GetByName(name); err == nil && existing != nil {
		return nil, apperror.Conflict("A category with that name already exists")
	}

	category := &models.Category{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.WithTx(tx).Create(category); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionCreate, "category", &category.ID,
			map[string]interface{}{"name": category.Name}, ip)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Update renames a category. Renaming to its own current name is a no-op.
func (s *CategoryService) Update(actor *models.Admin, id uint, name, ip string) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.categoryRepo.GetByName(name); err == nil && existing.ID != id {
		return nil, apperror.Conflict("A category with that name already exists")
	}

	if category.Name == name {
		return category, nil
	}

	oldName := category.Name
	category.Name = name

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.WithTx(tx).UpdateName(id, name); err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionUpdate, "category", &id,
			map[string]interface{}{"old_name": oldName, "new_name": name}, ip)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (s *CategoryService) Delete(actor *models.Admin, id uint, ip string) error {
	category, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionDelete, "category", &id,
			map[string]interface{}{"name": category.Name}, ip)
	})
}
