package service

import (
	"testing"

	"catalog-admin-backend/internal/database"
	"catalog-admin-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database with the full schema. The
// connection pool is pinned to one connection so every query sees the
// same in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedAdmin inserts an admin row directly. The first call in a fresh
// database yields id 1, the protected primary admin.
func seedAdmin(t *testing.T, db *gorm.DB, email string, active bool) *models.Admin {
	t.Helper()

	admin := &models.Admin{
		Email:        email,
		Name:         "Admin " + email,
		PasswordHash: "not-a-real-hash",
		IsActive:     active,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

// lastAuditLog returns the newest audit row.
func lastAuditLog(t *testing.T, db *gorm.DB) *models.AuditLog {
	t.Helper()

	var entry models.AuditLog
	require.NoError(t, db.Order("id DESC").First(&entry).Error)
	return &entry
}

func auditCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	return count
}
