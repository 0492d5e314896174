package service

import (
	"fmt"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"gorm.io/gorm"
)

type ProviderService struct {
	db           *gorm.DB
	providerRepo *repository.ProviderRepository
	auditRepo    *repository.AuditRepository
}

func NewProviderService(db *gorm.DB, providerRepo *repository.ProviderRepository, auditRepo *repository.AuditRepository) *ProviderService {
	return &ProviderService{
		db:           db,
		providerRepo: providerRepo,
		auditRepo:    auditRepo,
	}
}

// ProviderUpdate carries optional provider field changes; nil means unchanged.
type ProviderUpdate struct {
	Name        *string
	Contact     *string
	Phone       *string
	Description *string
}

// ListAll retrieves all providers ordered by name
func (s *ProviderService) ListAll() ([]models.Provider, error) {
	return s.providerRepo.GetAll()
}

// GetByID retrieves one provider
func (s *ProviderService) GetByID(id uint) (*models.Provider, error) {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("Provider not found")
		}
		return nil, err
	}
	return provider, nil
}

// Create adds a provider
func (s *ProviderService) Create(actor *models.Admin, provider *models.Provider, ip string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.providerRepo.WithTx(tx).Create(provider); err != nil {
			return fmt.Errorf("failed to create provider: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionCreate, "provider", &provider.ID,
			map[string]interface{}{"name": provider.Name}, ip)
	})
}

// Update applies allow-listed field changes to a provider
func (s *ProviderService) Update(actor *models.Admin, id uint, update ProviderUpdate, ip string) (*models.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldData := map[string]interface{}{
		"name":        provider.Name,
		"contact":     provider.Contact,
		"phone":       provider.Phone,
		"description": provider.Description,
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
		provider.Name = *update.Name
	}
	if update.Contact != nil {
		fields["contact"] = *update.Contact
		provider.Contact = *update.Contact
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
		provider.Phone = *update.Phone
	}
	if update.Description != nil {
		fields["description"] = *update.Description
		provider.Description = *update.Description
	}

	if len(fields) == 0 {
		return provider, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.providerRepo.WithTx(tx).UpdateFields(id, fields); err != nil {
			return fmt.Errorf("failed to update provider: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionUpdate, "provider", &id,
			map[string]interface{}{
				"old_data": oldData,
				"new_data": map[string]interface{}{
					"name":        provider.Name,
					"contact":     provider.Contact,
					"phone":       provider.Phone,
					"description": provider.Description,
				},
			}, ip)
	})
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// Delete removes a provider
func (s *ProviderService) Delete(actor *models.Admin, id uint, ip string) error {
	provider, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.providerRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete provider: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionDelete, "provider", &id,
			map[string]interface{}{"name": provider.Name}, ip)
	})
}
