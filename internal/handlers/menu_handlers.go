package handlers

import (
	"errors"
	"net/http"

	"dpizza_backend/internal/services"
	"dpizza_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the customer-facing catalog read path and the admin
// menu mutation layer.
type MenuHandler struct {
	catalogService services.CatalogService
	menuService    services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(cs services.CatalogService, ms services.MenuService) *MenuHandler {
	return &MenuHandler{catalogService: cs, menuService: ms}
}

// GetMenu handles the storefront menu listing, filtered by ?category=.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	c.JSON(http.StatusOK, h.catalogService.ListItems(category))
}

// GetAdminMenu returns the unfiltered menu for the admin table.
func (h *MenuHandler) GetAdminMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.menuService.GetMenu())
}

// CreateMenuItem handles admin product creation.
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	item, err := h.menuService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateMenuItem: Error from menuService.CreateItem")
		if errors.Is(err, services.ErrMenuValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item data.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles admin product edits, replacing the item by id.
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item id.", err.Error()))
		return
	}
	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	item, err := h.menuService.UpdateItem(id, req)
	if err != nil {
		utils.LogError(err, "UpdateMenuItem: Error from menuService.UpdateItem")
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		case errors.Is(err, services.ErrMenuValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item data.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles admin product deletion.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item id.", err.Error()))
		return
	}
	if err := h.menuService.DeleteItem(id); err != nil {
		utils.LogError(err, "DeleteMenuItem: Error from menuService.DeleteItem")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete menu item.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
