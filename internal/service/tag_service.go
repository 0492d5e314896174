package service

import (
	"fmt"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"gorm.io/gorm"
)

type TagService struct {
	db        *gorm.DB
	tagRepo   *repository.TagRepository
	auditRepo *repository.AuditRepository
}

func NewTagService(db *gorm.DB, tagRepo *repository.TagRepository, auditRepo *repository.AuditRepository) *TagService {
	return &TagService{
		db:        db,
		tagRepo:   tagRepo,
		auditRepo: auditRepo,
	}
}

// ListAll retrieves all tags ordered by name
func (s *TagService) ListAll() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

// GetByID retrieves one tag
func (s *TagService) GetByID(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("Tag not found")
		}
		return nil, err
	}
	return tag, nil
}

// Create adds a tag. Names collide case-sensitively.
func (s *TagService) Create(actor *models.Admin, name, ip string) (*models.Tag, error) {
	if existing, err := s.tagRepo.GetByName(name); err == nil && existing != nil {
		return nil, apperror.Conflict("A tag with that name already exists")
	}

	tag := &models.Tag{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tagRepo.WithTx(tx).Create(tag); err != nil {
			return fmt.Errorf("failed to create tag: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionCreate, "tag", &tag.ID,
			map[string]interface{}{"name": tag.Name}, ip)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Update renames a tag. Renaming to its own current name is a no-op.
func (s *TagService) Update(actor *models.Admin, id uint, name, ip string) (*models.Tag, error) {
	tag, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.tagRepo.GetByName(name); err == nil && existing.ID != id {
		return nil, apperror.Conflict("A tag with that name already exists")
	}

	if tag.Name == name {
		return tag, nil
	}

	oldName := tag.Name
	tag.Name = name

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tagRepo.WithTx(tx).UpdateName(id, name); err != nil {
			return fmt.Errorf("failed to update tag: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionUpdate, "tag", &id,
			map[string]interface{}{"old_name": oldName, "new_name": name}, ip)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag
func (s *TagService) Delete(actor *models.Admin, id uint, ip string) error {
	tag, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tagRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete tag: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionDelete, "tag", &id,
			map[string]interface{}{"name": tag.Name}, ip)
	})
}
