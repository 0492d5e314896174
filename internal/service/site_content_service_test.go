package service

import (
	"testing"

	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSiteContentService(db *gorm.DB) *SiteContentService {
	return NewSiteContentService(db, repository.NewSiteContentRepo(db), repository.NewAuditRepo(db))
}

func TestSiteContentGetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newSiteContentService(db)

	content, err := svc.GetOrCreate("about")
	require.NoError(t, err)
	assert.Equal(t, "about", content.Key)
	assert.Empty(t, content.Title)
	assert.Empty(t, content.Content)

	again, err := svc.GetOrCreate("about")
	require.NoError(t, err)
	assert.Equal(t, content.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.SiteContent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSiteContentUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := newSiteContentService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	title := "About Us"
	body := "We sell things."
	content, err := svc.Update(actor, "about", &title, &body, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "About Us", content.Title)
	assert.Equal(t, "We sell things.", content.Content)
	require.NotNil(t, content.UpdatedBy)
	assert.Equal(t, actor.ID, *content.UpdatedBy)

	entry := lastAuditLog(t, db)
	assert.Equal(t, models.ActionUpdate, entry.Action)
	assert.Equal(t, "site_content", entry.Entity)
}

func TestSiteContentPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := newSiteContentService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	title := "Contact"
	body := "mail@example.com"
	_, err := svc.Update(actor, "contact", &title, &body, "127.0.0.1")
	require.NoError(t, err)

	newBody := "hello@example.com"
	updated, err := svc.Update(actor, "contact", nil, &newBody, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Contact", updated.Title)
	assert.Equal(t, "hello@example.com", updated.Content)
}
