package service

import (
	"fmt"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/pkg/utils"

	"gorm.io/gorm"
)

// AdminService enforces the admin-management protection rules. Rules are
// always checked in the same order: self-action prohibition first, then
// primary-admin immunity. Every successful mutation writes its audit row in
// the same transaction; a failed audit write rolls the mutation back.
type AdminService struct {
	db        *gorm.DB
	adminRepo *repository.AdminRepository
	auditRepo *repository.AuditRepository
}

func NewAdminService(db *gorm.DB, adminRepo *repository.AdminRepository, auditRepo *repository.AuditRepository) *AdminService {
	return &AdminService{
		db:        db,
		adminRepo: adminRepo,
		auditRepo: auditRepo,
	}
}

// ListAll retrieves all admins, newest first
func (s *AdminService) ListAll() ([]models.Admin, error) {
	return s.adminRepo.GetAll()
}

// GetByID retrieves one admin
func (s *AdminService) GetByID(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("Admin not found")
		}
		return nil, err
	}
	return admin, nil
}

// Create registers a new admin account
func (s *AdminService) Create(actor *models.Admin, email, name, password, ip string) (*models.Admin, error) {
	if existing, err := s.adminRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperror.Conflict("Email is already registered")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adminRepo.WithTx(tx).Create(admin); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionCreateAdmin, "admin", &admin.ID,
			map[string]interface{}{"email": admin.Email, "name": admin.Name}, ip)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Update changes an admin's email and/or name. Only the primary admin may
// modify the primary admin account.
func (s *AdminService) Update(actor *models.Admin, targetID uint, email, name *string, ip string) (*models.Admin, error) {
	if targetID == models.PrimaryAdminID && actor.ID != models.PrimaryAdminID {
		return nil, apperror.Forbidden("Only the primary admin can modify the primary admin account")
	}

	admin, err := s.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	oldData := map[string]interface{}{"email": admin.Email, "name": admin.Name}
	fields := map[string]interface{}{}

	if email != nil && *email != admin.Email {
		if existing, err := s.adminRepo.GetByEmail(*email); err == nil && existing.ID != targetID {
			return nil, apperror.Conflict("Email is already in use")
		}
		fields["email"] = *email
		admin.Email = *email
	}
	if name != nil && *name != admin.Name {
		fields["name"] = *name
		admin.Name = *name
	}

	if len(fields) == 0 {
		return admin, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adminRepo.WithTx(tx).UpdateFields(targetID, fields); err != nil {
			return fmt.Errorf("failed to update admin: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionUpdateAdmin, "admin", &targetID,
			map[string]interface{}{
				"old_data": oldData,
				"new_data": map[string]interface{}{"email": admin.Email, "name": admin.Name},
			}, ip)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// ChangePassword sets a new password for an admin. Only the primary admin
// may change the primary admin's password.
func (s *AdminService) ChangePassword(actor *models.Admin, targetID uint, password, ip string) (*models.Admin, error) {
	if targetID == models.PrimaryAdminID && actor.ID != models.PrimaryAdminID {
		return nil, apperror.Forbidden("Only the primary admin can change the primary admin's password")
	}

	admin, err := s.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adminRepo.WithTx(tx).UpdateFields(targetID, map[string]interface{}{"password_hash": passwordHash}); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionChangePassword, "admin", &targetID,
			map[string]interface{}{"target_admin": admin.Email}, ip)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// ToggleStatus flips an admin's active flag. Self-toggling is rejected and
// the primary admin can never be toggled.
func (s *AdminService) ToggleStatus(actor *models.Admin, targetID uint, ip string) (*models.Admin, error) {
	if targetID == actor.ID {
		return nil, apperror.BadRequest("You cannot deactivate your own account")
	}
	if targetID == models.PrimaryAdminID {
		return nil, apperror.Forbidden("The primary admin account cannot be deactivated")
	}

	admin, err := s.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	oldStatus := admin.IsActive
	admin.IsActive = !oldStatus

	action := models.ActionDeactivateAdmin
	if admin.IsActive {
		action = models.ActionActivateAdmin
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adminRepo.WithTx(tx).UpdateFields(targetID, map[string]interface{}{"is_active": admin.IsActive}); err != nil {
			return fmt.Errorf("failed to toggle admin status: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, action, "admin", &targetID,
			map[string]interface{}{
				"email":      admin.Email,
				"old_status": oldStatus,
				"new_status": admin.IsActive,
			}, ip)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete removes an admin account. Self-deletion is rejected and the primary
// admin can never be deleted.
func (s *AdminService) Delete(actor *models.Admin, targetID uint, ip string) error {
	if targetID == actor.ID {
		return apperror.BadRequest("You cannot delete your own account")
	}
	if targetID == models.PrimaryAdminID {
		return apperror.Forbidden("The primary admin account cannot be deleted")
	}

	admin, err := s.GetByID(targetID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adminRepo.WithTx(tx).Delete(targetID); err != nil {
			return fmt.Errorf("failed to delete admin: %w", err)
		}
		return s.auditRepo.WithTx(tx).Create(&actor.ID, models.ActionDeleteAdmin, "admin", &targetID,
			map[string]interface{}{"email": admin.Email, "name": admin.Name}, ip)
	})
}
