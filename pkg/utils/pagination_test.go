package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	p := ParsePagination(paginationContext(t, ""))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePaginationClamps(t *testing.T) {
	p := ParsePagination(paginationContext(t, "page=0&per_page=500"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = ParsePagination(paginationContext(t, "page=abc&per_page=-3"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}

func TestPaginationOffsetAndPages(t *testing.T) {
	p := Pagination{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
	assert.Equal(t, 0, p.Pages(0))
	assert.Equal(t, 1, p.Pages(15))
	assert.Equal(t, 2, p.Pages(16))
	assert.Equal(t, 3, p.Pages(31))
}

func TestQueryUintList(t *testing.T) {
	c := paginationContext(t, "category_id=1&category_id=2&category_id=bogus")
	assert.Equal(t, []uint{1, 2}, QueryUintList(c, "category_id"))
	assert.Nil(t, QueryUintList(c, "tag_id"))
}
