package models

import "time"

// Product represents the products table.
// ImagePath mirrors the current primary image for older API consumers.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	ImagePath   *string   `gorm:"size:500" json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Categories []Category     `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Tags       []Tag          `gorm:"many2many:product_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Providers  []Provider     `gorm:"many2many:product_providers;constraint:OnDelete:CASCADE" json:"providers,omitempty"`
	Images     []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}

// PrimaryImage returns the image flagged as primary, or nil if the product has none.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}
