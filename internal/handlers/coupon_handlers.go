package handlers

import (
	"errors"
	"net/http"

	"dpizza_backend/internal/services"
	"dpizza_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CouponHandler exposes the admin coupon CRUD.
type CouponHandler struct {
	couponService services.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(cs services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: cs}
}

// GetCoupons lists every coupon, active and retired.
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, h.couponService.GetCoupons())
}

// CreateCoupon registers a new coupon; the code is normalized upper-case.
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req services.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	coupon, err := h.couponService.CreateCoupon(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Coupon code already exists.", err.Error()))
		case errors.Is(err, services.ErrCouponValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid coupon data.", err.Error()))
		default:
			utils.LogError(err, "CreateCoupon: Error from couponService.CreateCoupon")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create coupon.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// UpdateCoupon patches a coupon's discount or active flag (soft retire).
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	var req services.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	coupon, err := h.couponService.UpdateCoupon(c.Param("code"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Coupon not found.", err.Error()))
		case errors.Is(err, services.ErrCouponValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid coupon data.", err.Error()))
		default:
			utils.LogError(err, "UpdateCoupon: Error from couponService.UpdateCoupon")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update coupon.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// DeleteCoupon removes a coupon outright. Prefer the active flag when the
// code may come back.
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.couponService.DeleteCoupon(c.Param("code")); err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Coupon not found.", err.Error()))
			return
		}
		utils.LogError(err, "DeleteCoupon: Error from couponService.DeleteCoupon")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete coupon.", "Internal error"))
		return
	}
	c.Status(http.StatusNoContent)
}
