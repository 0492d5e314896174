package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImage(t *testing.T) {
	assert.True(t, AllowedImage("photo.jpg"))
	assert.True(t, AllowedImage("photo.JPEG"))
	assert.True(t, AllowedImage("photo.png"))
	assert.True(t, AllowedImage("photo.webp"))

	assert.False(t, AllowedImage("clip.gif"))
	assert.False(t, AllowedImage("notes.txt"))
	assert.False(t, AllowedImage("noextension"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeFor("a.png"))
	assert.Equal(t, "image/webp", ContentTypeFor("a.webp"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.jpeg"))
}
