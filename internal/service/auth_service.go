package service

import (
	"fmt"
	"net/http"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/pkg/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	adminRepo *repository.AdminRepository
	auditRepo *repository.AuditRepository
}

func NewAuthService(db *gorm.DB, adminRepo *repository.AdminRepository, auditRepo *repository.AuditRepository) *AuthService {
	return &AuthService{
		db:        db,
		adminRepo: adminRepo,
		auditRepo: auditRepo,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login authenticates an admin and returns a signed bearer token.
// Unknown email, wrong password and inactive account all produce the same
// credentials error.
func (s *AuthService) Login(email, password, ip string) (*LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil || !admin.IsActive || !utils.ComparePassword(admin.PasswordHash, password) {
		return nil, apperror.New(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	adminID := admin.ID
	if err := s.auditRepo.Create(&adminID, models.ActionLogin, "", nil, nil, ip); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &LoginResponse{
		Token: token,
		Admin: AdminResponse{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
		},
	}, nil
}
