package service

import (
	"net/http"
	"testing"
	"time"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, repository.NewAdminRepo(db), repository.NewAuditRepo(db))
}

func seedLoginAdmin(t *testing.T, db *gorm.DB, email, password string, active bool) *models.Admin {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	admin := &models.Admin{
		Email:        email,
		Name:         "Admin " + email,
		PasswordHash: hash,
		IsActive:     active,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func initTestJWT(t *testing.T) {
	t.Helper()
	utils.InitJWT("test-secret", 8*time.Hour)
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	initTestJWT(t)
	svc := newAuthService(db)
	admin := seedLoginAdmin(t, db, "root@example.com", "secret123", true)

	resp, err := svc.Login("root@example.com", "secret123", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.ID, resp.Admin.ID)
	assert.Equal(t, admin.Email, resp.Admin.Email)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)

	entry := lastAuditLog(t, db)
	assert.Equal(t, models.ActionLogin, entry.Action)
	require.NotNil(t, entry.AdminID)
	assert.Equal(t, admin.ID, *entry.AdminID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	initTestJWT(t)
	svc := newAuthService(db)
	seedLoginAdmin(t, db, "root@example.com", "secret123", true)

	_, err := svc.Login("root@example.com", "wrong", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.Status(err))
	assert.EqualError(t, err, "Invalid credentials")
	assert.Zero(t, auditCount(t, db))
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	initTestJWT(t)
	svc := newAuthService(db)

	_, err := svc.Login("nobody@example.com", "secret123", "127.0.0.1")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials")
}

// Inactive accounts are indistinguishable from bad credentials.
func TestLoginInactiveAdmin(t *testing.T) {
	db := setupTestDB(t)
	initTestJWT(t)
	svc := newAuthService(db)
	seedLoginAdmin(t, db, "root@example.com", "secret123", false)

	_, err := svc.Login("root@example.com", "secret123", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.Status(err))
	assert.EqualError(t, err, "Invalid credentials")
}
