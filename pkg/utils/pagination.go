package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// Pagination holds normalized page/per_page query values.
type Pagination struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pages computes the page count for a total row count.
func (p Pagination) Pages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// ParsePagination reads page/per_page from the query string, clamping to
// sane bounds.
func ParsePagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Pagination{Page: page, PerPage: perPage}
}

// PaginatedResponse sends the standard paginated envelope.
func PaginatedResponse(c *gin.Context, items interface{}, total int64, p Pagination) {
	SuccessResponse(c, gin.H{
		"items":        items,
		"total":        total,
		"pages":        p.Pages(total),
		"current_page": p.Page,
		"per_page":     p.PerPage,
	})
}

// QueryUintList parses repeated uint query parameters, e.g. ?category_id=1&category_id=2.
// Invalid values are skipped.
func QueryUintList(c *gin.Context, key string) []uint {
	var ids []uint
	for _, raw := range c.QueryArray(key) {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}
