package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2, 3}, 23, 2, 10)

	assert.Equal(t, int64(23), resp.Meta.TotalItems)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, 2, resp.Meta.CurrentPage)
	assert.Equal(t, 10, resp.Meta.PageSize)
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, paginate(items, 1, 2))
	assert.Equal(t, []string{"c", "d"}, paginate(items, 2, 2))
	assert.Equal(t, []string{"e"}, paginate(items, 3, 2))
	assert.Empty(t, paginate(items, 4, 2))
}
