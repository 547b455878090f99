package services

import (
	"errors"
	"fmt"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
)

var (
	ErrCouponNotFound   = errors.New("coupon not found or not active")
	ErrCouponExists     = errors.New("coupon code already exists")
	ErrCouponValidation = errors.New("coupon validation error")
)

// --- Coupon DTOs ---

type CreateCouponRequest struct {
	Code            string `json:"code" binding:"required"`
	DiscountPercent int    `json:"discount"`
	Active          *bool  `json:"active"` // defaults to true when omitted
}

type UpdateCouponRequest struct {
	DiscountPercent *int  `json:"discount"`
	Active          *bool `json:"active"`
}

// CouponService resolves customer-entered codes and carries the admin CRUD
// over coupon definitions.
type CouponService interface {
	// Resolve returns the active coupon matching code, case-insensitively.
	// Absent, inactive and empty codes all yield ErrCouponNotFound.
	Resolve(code string) (*models.Coupon, error)
	// DiscountFor computes the floor-rounded percentage discount for a
	// subtotal. A nil coupon discounts nothing.
	DiscountFor(coupon *models.Coupon, subtotal int64) int64

	GetCoupons() []models.Coupon
	CreateCoupon(req CreateCouponRequest) (*models.Coupon, error)
	UpdateCoupon(code string, req UpdateCouponRequest) (*models.Coupon, error)
	DeleteCoupon(code string) error
}

type couponService struct {
	couponRepo repositories.CouponRepository
}

// NewCouponService creates a new instance of CouponService.
func NewCouponService(couponRepo repositories.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

func (s *couponService) Resolve(code string) (*models.Coupon, error) {
	if repositories.NormalizeCode(code) == "" {
		return nil, ErrCouponNotFound
	}
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if !coupon.Active {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

func (s *couponService) DiscountFor(coupon *models.Coupon, subtotal int64) int64 {
	if coupon == nil {
		return 0
	}
	// Integer division floors for non-negative operands, which is exactly
	// the rounding the storefront promises. The percent range guard at
	// create time keeps the discount within [0, subtotal].
	return subtotal * int64(coupon.DiscountPercent) / 100
}

func (s *couponService) GetCoupons() []models.Coupon {
	return s.couponRepo.GetCoupons()
}

func (s *couponService) CreateCoupon(req CreateCouponRequest) (*models.Coupon, error) {
	if repositories.NormalizeCode(req.Code) == "" {
		return nil, fmt.Errorf("%w: code cannot be empty", ErrCouponValidation)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount must be between 0 and 100", ErrCouponValidation)
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	coupon := models.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Active:          active,
	}
	if err := s.couponRepo.CreateCoupon(&coupon); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrCouponExists, coupon.Code)
		}
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return &coupon, nil
}

// UpdateCoupon patches discount and/or the active flag. Flipping Active to
// false is the soft retire: the coupon stops resolving but stays listed.
func (s *couponService) UpdateCoupon(code string, req UpdateCouponRequest) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 0 || *req.DiscountPercent > 100 {
			return nil, fmt.Errorf("%w: discount must be between 0 and 100", ErrCouponValidation)
		}
		coupon.DiscountPercent = *req.DiscountPercent
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if err := s.couponRepo.UpdateCoupon(coupon); err != nil {
		return nil, fmt.Errorf("failed to update coupon %s: %w", coupon.Code, err)
	}
	return coupon, nil
}

func (s *couponService) DeleteCoupon(code string) error {
	if err := s.couponRepo.DeleteCoupon(code); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCouponNotFound
		}
		return fmt.Errorf("failed to delete coupon %s: %w", code, err)
	}
	return nil
}
