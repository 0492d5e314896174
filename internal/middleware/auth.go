package middleware

import (
	"net/http"
	"strings"

	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const currentAdminKey = "currentAdmin"

// AuthMiddleware validates the bearer token and resolves it to an active
// admin account, which is stored in the request context as the acting admin.
func AuthMiddleware(adminRepo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		admin, err := adminRepo.GetByID(claims.AdminID)
		if err != nil || !admin.IsActive {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Admin not found or inactive")
			c.Abort()
			return
		}

		c.Set(currentAdminKey, admin)
		c.Next()
	}
}

// CurrentAdmin returns the acting admin resolved by AuthMiddleware.
func CurrentAdmin(c *gin.Context) *models.Admin {
	value, exists := c.Get(currentAdminKey)
	if !exists {
		return nil
	}
	admin, ok := value.(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}
