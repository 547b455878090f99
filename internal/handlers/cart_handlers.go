package handlers

import (
	"errors"
	"net/http"

	"dpizza_backend/internal/services"
	"dpizza_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionHeader names the header carrying the cart session id. Absent, the
// single shared default session is used.
const SessionHeader = "X-Session-Id"

// CartHandler exposes the session cart engine.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func sessionID(c *gin.Context) string {
	if sid := c.GetHeader(SessionHeader); sid != "" {
		return sid
	}
	return services.DefaultSessionID
}

type addCartItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type reorderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// GetCart returns the live cart view with freshly computed totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.View(sessionID(c)))
}

// AddItem adds one unit of a menu item to the cart. An unknown item id is a
// silent no-op by design, so the response is always the current view.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.cartService.Add(sessionID(c), req.ItemID))
}

// ChangeQuantity adjusts a line's quantity by a signed delta.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item id.", err.Error()))
		return
	}
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.cartService.ChangeQuantity(sessionID(c), itemID, req.Delta))
}

// ClearCart empties the cart ("return home").
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.Clear(sessionID(c))
	c.Status(http.StatusNoContent)
}

// ApplyCoupon resolves and attaches a coupon code to the cart.
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	view, err := h.cartService.ApplyCoupon(sessionID(c), req.Code)
	if err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Invalid or expired coupon.", err.Error()))
			return
		}
		utils.LogError(err, "ApplyCoupon: Error from cartService.ApplyCoupon")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to apply coupon.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveCoupon detaches any applied coupon.
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.RemoveCoupon(sessionID(c)))
}

// Reorder replaces the cart with a past order's item snapshot.
func (h *CartHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	view, err := h.cartService.Reorder(sessionID(c), req.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
			return
		}
		utils.LogError(err, "Reorder: Error from cartService.Reorder")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to reorder.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, view)
}
