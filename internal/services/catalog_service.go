package services

import (
	"errors"
	"fmt"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
	"dpizza_backend/pkg/utils"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// DefaultMenu is the first-run menu seed, written once when the store has
// never held a menu key.
var DefaultMenu = []models.MenuItem{
	{
		ID:          1,
		Name:        "Margherita",
		Category:    models.CategoryVeg,
		Price:       299,
		Description: "Classic delight with 100% real mozzarella cheese",
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbad80ad38?auto=format&fit=crop&w=500&q=80",
	},
	{
		ID:          2,
		Name:        "Farmhouse",
		Category:    models.CategoryVeg,
		Price:       449,
		Description: "Delightful combination of onion, capsicum, tomato & mushroom",
		Image:       "https://images.unsplash.com/photo-1571407970349-bc81e7e96d47?auto=format&fit=crop&w=500&q=80",
	},
}

// CatalogService is the read-only customer-facing view of the menu.
type CatalogService interface {
	ListItems(category string) []models.MenuItem
	GetItem(id int64) (*models.MenuItem, error)
	EnsureSeeded() error
}

type catalogService struct {
	menuRepo repositories.MenuRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(menuRepo repositories.MenuRepository) CatalogService {
	return &catalogService{menuRepo: menuRepo}
}

// ListItems returns the menu filtered by exact category match, or the whole
// menu for "all" (and for an empty filter, which the HTTP layer defaults).
func (s *catalogService) ListItems(category string) []models.MenuItem {
	menu := s.menuRepo.GetMenu()
	if category == "" || category == models.CategoryAll {
		return menu
	}
	filtered := make([]models.MenuItem, 0, len(menu))
	for _, item := range menu {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s *catalogService) GetItem(id int64) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrMenuItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch menu item %d: %w", id, err)
	}
	return item, nil
}

// EnsureSeeded writes the default menu on first run. Idempotent: once the
// menu key exists the seed is skipped, even if the stored menu is empty.
// This is the single seeding entry point, invoked once at process start.
func (s *catalogService) EnsureSeeded() error {
	if s.menuRepo.HasMenu() {
		return nil
	}
	if err := s.menuRepo.ReplaceMenu(DefaultMenu); err != nil {
		return fmt.Errorf("failed to seed default menu: %w", err)
	}
	utils.LogInfo("Seeded default menu", map[string]interface{}{"items": len(DefaultMenu)})
	return nil
}
