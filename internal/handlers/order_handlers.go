package handlers

import (
	"errors"
	"net/http"

	"dpizza_backend/internal/repositories"
	"dpizza_backend/internal/services"
	"dpizza_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes checkout, tracking and the admin order console.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// SubmitOrder handles checkout: it commits the session cart as a new
// pending order.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req services.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	order, err := h.orderService.Submit(sessionID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Cart is empty.", err.Error()))
			return
		}
		utils.LogError(err, "SubmitOrder: Error from orderService.Submit")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit order.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, order)
}

// TrackOrder resolves an order by id; the id "current" follows the
// last-order pointer.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	order, err := h.orderService.Track(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order details not found.", err.Error()))
			return
		}
		utils.LogError(err, "TrackOrder: Error from orderService.Track")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to track order.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrders lists history newest-first, optionally filtered by ?phone=.
// Used by the profile view (per-customer history) and the admin console.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderService.GetOrders(c.Query("phone")))
}

// UpdateOrderStatus moves an order to a new lifecycle status (admin only
// path; this is the sole writer of the status field).
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	order, err := h.orderService.UpdateStatus(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		case errors.Is(err, services.ErrInvalidOrderStatus):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order status.", err.Error()))
		default:
			utils.LogError(err, "UpdateOrderStatus: Error from orderService.UpdateStatus")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update order status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// ClearOrders drops the whole order history (admin bulk operation).
func (h *OrderHandler) ClearOrders(c *gin.Context) {
	if err := h.orderService.ClearAll(); err != nil {
		utils.LogError(err, "ClearOrders: Error from orderService.ClearAll")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to clear orders.", "Internal error"))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProfile returns the stored checkout prefill profile, 404 when no order
// has ever been submitted.
func (h *OrderHandler) GetProfile(c *gin.Context) {
	profile, err := h.orderService.GetProfile()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No customer profile yet.", err.Error()))
			return
		}
		utils.LogError(err, "GetProfile: Error from orderService.GetProfile")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load profile.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, profile)
}
