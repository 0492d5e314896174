package models

import "time"

// SiteContent represents the site_content table.
// Rows are created lazily the first time a key is read.
type SiteContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null;size:100" json:"key"`
	Title     string    `gorm:"size:200" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy *uint     `json:"updated_by"`
}

// TableName specifies the table name for SiteContent model
func (SiteContent) TableName() string {
	return "site_content"
}
