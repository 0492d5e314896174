package models

import "time"

// PrimaryAdminID is the id of the protected primary admin account.
// It cannot be deactivated or deleted by anyone, and only it may edit itself.
const PrimaryAdminID uint = 1

// Admin represents the admins table
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;size:200" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Name         string    `gorm:"not null;size:200" json:"name"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for Admin model
func (Admin) TableName() string {
	return "admins"
}

// IsPrimary reports whether this is the protected primary admin account.
func (a *Admin) IsPrimary() bool {
	return a.ID == PrimaryAdminID
}
