package handlers

import (
	"net/http"

	"dpizza_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the admin customer rollups and dashboard summary.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// GetCustomers returns the per-phone rollups derived from order history.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.customerService.Aggregate())
}

// GetDashboardSummary returns the admin landing-page totals.
func (h *CustomerHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.customerService.Summary())
}
