// internal/domain/catalog/category_service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
)

func TestCategoryDefaults(t *testing.T) {
	svc := NewCategoryService(persistence.NewMemoryStore())

	assert.Equal(t, []string{"Women", "Men", "Unisex"}, svc.List())
}

func TestCategoryAdd(t *testing.T) {
	svc := NewCategoryService(persistence.NewMemoryStore())

	changed := svc.Add("Totes")
	assert.True(t, changed)
	assert.Equal(t, []string{"Women", "Men", "Unisex", "Totes"}, svc.List())
}

func TestCategoryAddDuplicateIsSilentNoOp(t *testing.T) {
	svc := NewCategoryService(persistence.NewMemoryStore())

	changed := svc.Add("Women")
	assert.False(t, changed)
	assert.Len(t, svc.List(), 3)

	// Case differs, so this is a distinct label
	changed = svc.Add("women")
	assert.True(t, changed)
	assert.Len(t, svc.List(), 4)
}

func TestCategoryDeleteIgnoresReferences(t *testing.T) {
	store := persistence.NewMemoryStore()
	categories := NewCategoryService(store)
	products := NewService(store)

	categories.Delete("Women")

	assert.NotContains(t, categories.List(), "Women")

	// Products referencing the deleted label keep their stale category
	p, err := products.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Women", p.Category)

	// Filtering by the stale label still works
	assert.Len(t, products.Filter("", "Women"), 3)
}

func TestCategoryPersistsAcrossReload(t *testing.T) {
	store := persistence.NewMemoryStore()

	svc := NewCategoryService(store)
	svc.Add("Clutches")
	svc.Delete("Men")

	reloaded := NewCategoryService(store)
	assert.Equal(t, []string{"Women", "Unisex", "Clutches"}, reloaded.List())
}
