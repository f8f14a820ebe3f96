package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaults(t *testing.T) {
	var params ListParams
	params.Validate()

	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultPerPage, params.PerPage)
	assert.Equal(t, DefaultSortBy, params.SortBy)
	assert.Equal(t, DefaultOrderBy, params.OrderBy)
}

func TestValidateClampsPerPage(t *testing.T) {
	params := ListParams{Page: 3, PerPage: 500, SortBy: "name", OrderBy: "asc"}
	params.Validate()

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, MaxPerPage, params.PerPage)
	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, "asc", params.OrderBy)
}

func TestValidateRejectsBadOrder(t *testing.T) {
	params := ListParams{OrderBy: "sideways"}
	params.Validate()

	assert.Equal(t, DefaultOrderBy, params.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	params := ListParams{Page: 1, PerPage: 20}
	assert.Equal(t, 0, params.CalculateOffset())

	params.Page = 4
	assert.Equal(t, 60, params.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}
