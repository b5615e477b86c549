package services

import (
	"testing"

	"github.com/asanchezr/gin-menu-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItem(name string) models.MenuItem {
	return models.MenuItem{
		Name:        name,
		Description: "A test dish long enough to pass validation",
		Price:       9.99,
		Category:    models.CategoryEntree,
		Ingredients: []string{"ingredient"},
		Available:   true,
	}
}

func TestSeedData(t *testing.T) {
	service := NewMenuService()

	items := service.GetAllItems()
	require.Len(t, items, 3)

	// Seeded ids are 1..3 in insertion order
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
	}
	assert.Equal(t, "Tiramisu", items[1].Name)

	// Every seeded record satisfies the field constraints
	for _, item := range items {
		assert.GreaterOrEqual(t, len(item.Name), 3)
		assert.GreaterOrEqual(t, len(item.Description), 10)
		assert.Greater(t, item.Price, 0.0)
		assert.True(t, models.IsValidCategory(item.Category))
		assert.NotEmpty(t, item.Ingredients)
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	service := NewMenuService()

	first := service.CreateItem(sampleItem("First Dish"))
	assert.Equal(t, 4, first.ID)

	second := service.CreateItem(sampleItem("Second Dish"))
	assert.Equal(t, 5, second.ID)

	items := service.GetAllItems()
	require.Len(t, items, 5)
	assert.Equal(t, "First Dish", items[3].Name)
	assert.Equal(t, "Second Dish", items[4].Name)
}

func TestIDsAreNeverReused(t *testing.T) {
	service := NewMenuService()

	created := service.CreateItem(sampleItem("Short Lived"))
	require.Equal(t, 4, created.ID)

	_, err := service.DeleteItem(created.ID)
	require.NoError(t, err)

	// The counter keeps moving even though id 4 is gone
	next := service.CreateItem(sampleItem("Replacement"))
	assert.Equal(t, 5, next.ID)
}

func TestGetItemByID(t *testing.T) {
	service := NewMenuService()

	item, err := service.GetItemByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Tiramisu", item.Name)

	_, err = service.GetItemByID(99)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestUpdateReplacesInPlace(t *testing.T) {
	service := NewMenuService()

	replacement := sampleItem("Caprese Salad")
	replacement.Category = models.CategoryAppetizer
	// An id on the payload is ignored; the target id wins
	replacement.ID = 42

	updated, err := service.UpdateItem(1, replacement)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Caprese Salad", updated.Name)

	// Position in the collection is unchanged
	items := service.GetAllItems()
	require.Len(t, items, 3)
	assert.Equal(t, "Caprese Salad", items[0].Name)
	assert.Equal(t, "Tiramisu", items[1].Name)

	_, err = service.UpdateItem(99, sampleItem("Nobody Home"))
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestDeletePreservesRelativeOrder(t *testing.T) {
	service := NewMenuService()

	removed, err := service.DeleteItem(2)
	require.NoError(t, err)
	assert.Equal(t, "Tiramisu", removed.Name)

	items := service.GetAllItems()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[1].ID)

	// Deleting the same id again fails the same way
	_, err = service.DeleteItem(2)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestGetAllItemsReturnsACopy(t *testing.T) {
	service := NewMenuService()

	items := service.GetAllItems()
	items[0].Name = "Mutated"

	fresh, err := service.GetItemByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Bruschetta", fresh.Name)
}
