package service

import (
	"net/http"
	"testing"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(db, repository.NewCategoryRepo(db), repository.NewAuditRepo(db))
}

func newTagService(db *gorm.DB) *TagService {
	return NewTagService(db, repository.NewTagRepo(db), repository.NewAuditRepo(db))
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := newCategoryService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	created, err := svc.Create(actor, "Beverages", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Beverages", created.Name)

	_, err = svc.Create(actor, "Beverages", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.Status(err))
}

// Name collisions are case-sensitive: "beverages" and "Beverages" coexist.
func TestCategoryNameCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := newCategoryService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	_, err := svc.Create(actor, "Beverages", "127.0.0.1")
	require.NoError(t, err)

	_, err = svc.Create(actor, "beverages", "127.0.0.1")
	require.NoError(t, err)
}

func TestCategoryRenameConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newCategoryService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	_, err := svc.Create(actor, "Beverages", "127.0.0.1")
	require.NoError(t, err)
	snacks, err := svc.Create(actor, "Snacks", "127.0.0.1")
	require.NoError(t, err)

	_, err = svc.Update(actor, snacks.ID, "Beverages", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.Status(err))
}

// Renaming a category to its current name succeeds without writing anything.
func TestCategoryRenameToSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := newCategoryService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	category, err := svc.Create(actor, "Beverages", "127.0.0.1")
	require.NoError(t, err)
	before := auditCount(t, db)

	updated, err := svc.Update(actor, category.ID, "Beverages", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, before, auditCount(t, db))
}

func TestCategoryRenameWritesAudit(t *testing.T) {
	db := setupTestDB(t)
	svc := newCategoryService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	category, err := svc.Create(actor, "Beverages", "127.0.0.1")
	require.NoError(t, err)

	updated, err := svc.Update(actor, category.ID, "Drinks", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Drinks", updated.Name)

	entry := lastAuditLog(t, db)
	assert.Equal(t, models.ActionUpdate, entry.Action)
	assert.Equal(t, "category", entry.Entity)
	assert.JSONEq(t, `{"old_name":"Beverages","new_name":"Drinks"}`, string(entry.Details))
}

func TestCategoryDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newCategoryService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	category, err := svc.Create(actor, "Beverages", "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(actor, category.ID, "127.0.0.1"))

	_, err = svc.GetByID(category.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
	assert.Equal(t, models.ActionDelete, lastAuditLog(t, db).Action)
}

func TestTagCreateDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := newTagService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	_, err := svc.Create(actor, "organic", "127.0.0.1")
	require.NoError(t, err)

	_, err = svc.Create(actor, "organic", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.Status(err))
}

func TestTagRenameToSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := newTagService(db)
	actor := seedAdmin(t, db, "root@example.com", true)

	tag, err := svc.Create(actor, "organic", "127.0.0.1")
	require.NoError(t, err)
	before := auditCount(t, db)

	_, err = svc.Update(actor, tag.ID, "organic", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, before, auditCount(t, db))
}
