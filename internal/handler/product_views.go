package handler

import (
	"catalog-admin-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func serializeImage(image models.ProductImage) gin.H {
	return gin.H{
		"id":            image.ID,
		"image_url":     image.ImagePath,
		"is_primary":    image.IsPrimary,
		"display_order": image.DisplayOrder,
	}
}

func serializeNamedRefs(items []gin.H) []gin.H {
	if items == nil {
		return []gin.H{}
	}
	return items
}

// serializeProduct renders a product in its public shape; adminFields adds
// price and providers for authenticated callers.
func serializeProduct(product *models.Product, adminFields bool) gin.H {
	categories := make([]gin.H, 0, len(product.Categories))
	for _, c := range product.Categories {
		categories = append(categories, gin.H{"id": c.ID, "name": c.Name})
	}
	tags := make([]gin.H, 0, len(product.Tags))
	for _, t := range product.Tags {
		tags = append(tags, gin.H{"id": t.ID, "name": t.Name})
	}
	images := make([]gin.H, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, serializeImage(img))
	}

	var imageURL interface{}
	if primary := product.PrimaryImage(); primary != nil {
		imageURL = primary.ImagePath
	} else if product.ImagePath != nil {
		imageURL = *product.ImagePath
	}

	data := gin.H{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"categories":  serializeNamedRefs(categories),
		"tags":        serializeNamedRefs(tags),
		"images":      images,
		"image_url":   imageURL,
	}

	if adminFields {
		providers := make([]gin.H, 0, len(product.Providers))
		for _, p := range product.Providers {
			providers = append(providers, gin.H{"id": p.ID, "name": p.Name})
		}
		data["price"] = product.Price
		data["providers"] = serializeNamedRefs(providers)
	}

	return data
}

func serializeProducts(products []models.Product, adminFields bool) []gin.H {
	out := make([]gin.H, 0, len(products))
	for i := range products {
		out = append(out, serializeProduct(&products[i], adminFields))
	}
	return out
}
