package menuimport

import (
	"RestoOps-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRawItems(t *testing.T) {
	items := []domain.RawItem{
		{Name: "Espresso", Price: 2.50, CategoryName: "Coffee"},
		{Name: "  ", CategoryName: "Coffee"}, // unusable line
		{Name: "Mystery Special", Price: 9.00, CategoryName: ""},
		{Name: " Flat White ", CategoryName: "  "},
	}

	normalized := normalizeRawItems(items)

	assert.Len(t, normalized, 3)
	for _, item := range normalized {
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.CategoryName, "every extracted item carries a category")
	}
	assert.Equal(t, "Coffee", normalized[0].CategoryName)
	assert.Equal(t, fallbackCategory, normalized[1].CategoryName)
	assert.Equal(t, "Flat White", normalized[2].Name)
	assert.Equal(t, fallbackCategory, normalized[2].CategoryName)
}
