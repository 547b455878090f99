package services

import (
	"errors"
	"fmt"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
	"dpizza_backend/pkg/utils"
)

var ErrMenuValidation = errors.New("menu item validation error")

// PlaceholderImage is used when the admin saves an item without an image.
const PlaceholderImage = "https://via.placeholder.com/500x350?text=Pizza"

// --- Menu DTOs ---

// CreateMenuItemRequest is used by the admin console to add a product.
// Image is an opaque blob reference (URL or data-URL); the core never
// interprets it.
type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price"`
	Description string `json:"desc"`
	Image       string `json:"image"`
}

// UpdateMenuItemRequest replaces an existing item by id.
type UpdateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price"`
	Description string `json:"desc"`
	Image       string `json:"image"`
}

// MenuService is the admin mutation layer over the menu collection. The
// customer-facing read path lives in CatalogService.
type MenuService interface {
	GetMenu() []models.MenuItem
	CreateItem(req CreateMenuItemRequest) (*models.MenuItem, error)
	UpdateItem(id int64, req UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteItem(id int64) error
}

type menuService struct {
	menuRepo repositories.MenuRepository
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuRepo repositories.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func validateMenuFields(name string, price int64) error {
	if utils.IsEmpty(name) {
		return fmt.Errorf("%w: name cannot be empty", ErrMenuValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrMenuValidation)
	}
	return nil
}

func (s *menuService) GetMenu() []models.MenuItem {
	return s.menuRepo.GetMenu()
}

func (s *menuService) CreateItem(req CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuFields(req.Name, req.Price); err != nil {
		return nil, err
	}
	image := req.Image
	if image == "" {
		image = PlaceholderImage
	}
	item := models.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       image,
	}
	if err := s.menuRepo.CreateItem(&item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &item, nil
}

func (s *menuService) UpdateItem(id int64, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuFields(req.Name, req.Price); err != nil {
		return nil, err
	}
	item := models.MenuItem{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}
	if item.Image == "" {
		item.Image = PlaceholderImage
	}
	if err := s.menuRepo.UpdateItem(&item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrMenuItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to update menu item %d: %w", id, err)
	}
	return &item, nil
}

func (s *menuService) DeleteItem(id int64) error {
	if err := s.menuRepo.DeleteItem(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrMenuItemNotFound, id)
		}
		return fmt.Errorf("failed to delete menu item %d: %w", id, err)
	}
	return nil
}
