package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-admin-backend/internal/database"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret", time.Hour)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	r.GET("/protected", AuthMiddleware(repository.NewAdminRepo(db)), func(c *gin.Context) {
		admin := CurrentAdmin(c)
		c.JSON(http.StatusOK, gin.H{"admin_id": admin.ID})
	})
	return r, db
}

func seedAuthAdmin(t *testing.T, db *gorm.DB, active bool) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		Email:        "root@example.com",
		Name:         "Root",
		PasswordHash: "not-a-real-hash",
		IsActive:     active,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInactiveAdmin(t *testing.T) {
	r, db := setupAuthRouter(t)
	admin := seedAuthAdmin(t, db, false)

	token, err := utils.GenerateToken(admin.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareResolvesAdmin(t *testing.T) {
	r, db := setupAuthRouter(t)
	admin := seedAuthAdmin(t, db, true)

	token, err := utils.GenerateToken(admin.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":1`)
}
