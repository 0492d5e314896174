package service

import (
	"fmt"

	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"gorm.io/gorm"
)

type SiteContentService struct {
	db          *gorm.DB
	contentRepo *repository.SiteContentRepository
	auditRepo   *repository.AuditRepository
}

func NewSiteContentService(db *gorm.DB, contentRepo *repository.SiteContentRepository, auditRepo *repository.AuditRepository) *SiteContentService {
	return &SiteContentService{
		db:          db,
		contentRepo: contentRepo,
		auditRepo:   auditRepo,
	}
}

// GetOrCreate returns the content block for key, creating an empty one
// transactionally on first read. Subsequent reads return the stored value.
func (s *SiteContentService) GetOrCreate(key string) (*models.SiteContent, error) {
	content, err := s.contentRepo.GetByKey(key)
	if err == nil {
		return content, nil
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	content = &models.SiteContent{Key: key, Title: "", Content: ""}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.contentRepo.WithTx(tx).Create(content)
	})
	if err != nil {
		// Concurrent first read may have created the row already
		if existing, getErr := s.contentRepo.GetByKey(key); getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create site content: %w", err)
	}
	return content, nil
}

// Update changes a content block's title and/or content, stamping the
// updating admin.
func (s *SiteContentService) Update(actor *models.Admin, key string, title, contentText *string, ip string) (*models.SiteContent, error) {
	content, err := s.GetOrCreate(key)
	if err != nil {
		return nil, err
	}

	oldData := map[string]interface{}{"title": content.Title, "content": content.Content}

	fields := map[string]interface{}{"updated_by": actor.ID}
	if title != nil {
		fields["title"] = *title
		content.Title = *title
	}
	if contentText != nil {
		fields["content"] = *contentText
		content.Content = *contentText
	}
	content.UpdatedBy = &actor.ID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.contentRepo.WithTx(tx).UpdateFields(content.ID, fields); err != nil {
			return fmt.Errorf("failed to update site content: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionUpdate, "site_content", &content.ID,
			map[string]interface{}{
				"key":      key,
				"old_data": oldData,
				"new_data": map[string]interface{}{"title": content.Title, "content": content.Content},
			}, ip)
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}
