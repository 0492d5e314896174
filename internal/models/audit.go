package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit action codes written by the services.
const (
	ActionLogin           = "LOGIN"
	ActionCreate          = "CREATE"
	ActionUpdate          = "UPDATE"
	ActionDelete          = "DELETE"
	ActionCreateAdmin     = "CREATE_ADMIN"
	ActionUpdateAdmin     = "UPDATE_ADMIN"
	ActionChangePassword  = "CHANGE_PASSWORD"
	ActionActivateAdmin   = "ACTIVATE_ADMIN"
	ActionDeactivateAdmin = "DEACTIVATE_ADMIN"
	ActionDeleteAdmin     = "DELETE_ADMIN"
	ActionSetPrimaryImage = "SET_PRIMARY_IMAGE"
	ActionDeleteImage     = "DELETE_IMAGE"
)

// AuditLog represents the audit_logs table.
// Append-only: rows are never updated or deleted.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AdminID   *uint          `gorm:"index" json:"admin_id"`
	Action    string         `gorm:"size:50;not null" json:"action"`
	Entity    string         `gorm:"size:50" json:"entity"`
	EntityID  *uint          `json:"entity_id"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	CreatedAt time.Time      `json:"created_at"`
	Admin     *Admin         `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
