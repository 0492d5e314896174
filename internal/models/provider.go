package models

import "time"

// Provider represents the providers table
type Provider struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Contact     string    `gorm:"size:200" json:"contact,omitempty"`
	Phone       string    `gorm:"size:50" json:"phone,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Provider model
func (Provider) TableName() string {
	return "providers"
}
