package repository

import (
	"encoding/json"

	"catalog-admin-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditRepository writes and reads the append-only audit trail.
// There is deliberately no update or delete.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *AuditRepository) WithTx(tx *gorm.DB) *AuditRepository {
	return &AuditRepository{db: tx}
}

// Create appends an audit log entry. Details is marshalled to JSON; a nil
// details map produces a null column.
func (r *AuditRepository) Create(adminID *uint, action, entity string, entityID *uint, details map[string]interface{}, ip string) error {
	entry := &models.AuditLog{
		AdminID:   adminID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		IPAddress: ip,
	}

	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return err
		}
		entry.Details = datatypes.JSON(raw)
	}

	return r.db.Create(entry).Error
}

// ListPaginated returns audit entries newest-first with the actor preloaded
func (r *AuditRepository) ListPaginated(offset, limit int) ([]models.AuditLog, int64, error) {
	var total int64
	if err := r.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := r.db.Preload("Admin").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, total, err
}
