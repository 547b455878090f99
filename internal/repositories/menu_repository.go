package repositories

import (
	"fmt"
	"time"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/store"
)

// MenuRepository owns the persisted menu collection. Every mutation is a
// full read-modify-write of the collection per the store contract.
type MenuRepository interface {
	GetMenu() []models.MenuItem
	GetItemByID(id int64) (*models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	UpdateItem(item *models.MenuItem) error
	DeleteItem(id int64) error
	HasMenu() bool
	ReplaceMenu(menu []models.MenuItem) error
}

type menuRepository struct {
	store *store.Store
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(st *store.Store) MenuRepository {
	return &menuRepository{store: st}
}

// GetMenu returns the stored menu, or an empty slice when the key is absent
// or undecodable.
func (r *menuRepository) GetMenu() []models.MenuItem {
	menu := []models.MenuItem{}
	r.store.Read(store.KeyMenu, &menu)
	return menu
}

func (r *menuRepository) GetItemByID(id int64) (*models.MenuItem, error) {
	for _, item := range r.GetMenu() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
}

// CreateItem assigns a fresh id distinct from every existing id and appends
// the item to the menu. The id starts from the current unix-millisecond
// clock and walks forward past any collision, so two items created within
// the same millisecond still get distinct ids.
func (r *menuRepository) CreateItem(item *models.MenuItem) error {
	menu := r.GetMenu()

	taken := make(map[int64]bool, len(menu))
	for _, existing := range menu {
		taken[existing.ID] = true
	}
	id := time.Now().UnixMilli()
	for taken[id] {
		id++
	}
	item.ID = id

	menu = append(menu, *item)
	return r.store.Write(store.KeyMenu, menu)
}

func (r *menuRepository) UpdateItem(item *models.MenuItem) error {
	menu := r.GetMenu()
	for i := range menu {
		if menu[i].ID == item.ID {
			menu[i] = *item
			return r.store.Write(store.KeyMenu, menu)
		}
	}
	return fmt.Errorf("menu item %d: %w", item.ID, ErrNotFound)
}

func (r *menuRepository) DeleteItem(id int64) error {
	menu := r.GetMenu()
	kept := make([]models.MenuItem, 0, len(menu))
	for _, item := range menu {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(menu) {
		return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	return r.store.Write(store.KeyMenu, kept)
}

// HasMenu reports whether the menu key has ever been written. Seeding keys
// off presence: an explicitly emptied menu is not re-seeded.
func (r *menuRepository) HasMenu() bool {
	return r.store.Has(store.KeyMenu)
}

// ReplaceMenu overwrites the whole menu collection. Used by first-run
// seeding only.
func (r *menuRepository) ReplaceMenu(menu []models.MenuItem) error {
	return r.store.Write(store.KeyMenu, menu)
}
