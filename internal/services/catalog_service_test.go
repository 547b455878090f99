package services

import (
	"testing"

	"dpizza_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_SeedingIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.catalog.EnsureSeeded())
	assert.Len(t, env.catalog.ListItems(models.CategoryAll), 2)

	// Running again does not duplicate the seed.
	require.NoError(t, env.catalog.EnsureSeeded())
	assert.Len(t, env.catalog.ListItems(models.CategoryAll), 2)
}

func TestCatalogService_SeedingSkipsExistingEvenEmptyMenu(t *testing.T) {
	env := newTestEnv(t)

	// An admin who deleted everything keeps an empty menu: presence of the
	// key suppresses the seed.
	require.NoError(t, env.menuRepo.ReplaceMenu([]models.MenuItem{}))
	require.NoError(t, env.catalog.EnsureSeeded())
	assert.Empty(t, env.catalog.ListItems(models.CategoryAll))
}

func TestCatalogService_ListFiltersByCategory(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	_, err := env.menu.CreateItem(CreateMenuItemRequest{
		Name: "Garlic Bread", Category: models.CategorySides, Price: 149,
	})
	require.NoError(t, err)

	assert.Len(t, env.catalog.ListItems(models.CategoryAll), 3)
	assert.Len(t, env.catalog.ListItems(""), 3)

	sides := env.catalog.ListItems(models.CategorySides)
	require.Len(t, sides, 1)
	assert.Equal(t, "Garlic Bread", sides[0].Name)

	assert.Empty(t, env.catalog.ListItems(models.CategoryNonVeg))
}

func TestCatalogService_GetItem(t *testing.T) {
	env := newTestEnv(t)
	menu := seedMenu(t, env)

	item, err := env.catalog.GetItem(menu[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name)

	_, err = env.catalog.GetItem(424242)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestMenuService_CreateDefaultsPlaceholderImage(t *testing.T) {
	env := newTestEnv(t)

	item, err := env.menu.CreateItem(CreateMenuItemRequest{
		Name: "Peppy Paneer", Category: models.CategoryVeg, Price: 399,
	})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderImage, item.Image)
}

func TestMenuService_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.menu.CreateItem(CreateMenuItemRequest{Name: "  ", Category: "veg", Price: 10})
	assert.ErrorIs(t, err, ErrMenuValidation)

	_, err = env.menu.CreateItem(CreateMenuItemRequest{Name: "X", Category: "veg", Price: -1})
	assert.ErrorIs(t, err, ErrMenuValidation)

	_, err = env.menu.UpdateItem(424242, UpdateMenuItemRequest{Name: "X", Category: "veg", Price: 10})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	assert.ErrorIs(t, env.menu.DeleteItem(424242), ErrMenuItemNotFound)
}
