package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// ObjectStore is the external collaborator that holds product image files.
// Upload returns a stable URL for the stored object; Delete removes it again
// by that URL.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// AllowedImage reports whether filename has an accepted image extension.
func AllowedImage(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ContentTypeFor maps an image filename to its MIME type.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
