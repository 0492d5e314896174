package models

import "time"

// ProductImage represents the product_images table.
// A product with at least one image always has exactly one primary image.
type ProductImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	ImagePath    string    `gorm:"not null;size:500" json:"image_path"`
	IsPrimary    bool      `gorm:"not null;default:false" json:"is_primary"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}
