package repositories

import (
	"fmt"
	"strings"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/store"
)

// CouponRepository owns the persisted coupon collection. Codes are stored
// upper-cased and every lookup normalizes its argument the same way, so
// comparisons are effectively case-insensitive.
type CouponRepository interface {
	GetCoupons() []models.Coupon
	GetByCode(code string) (*models.Coupon, error)
	CreateCoupon(c *models.Coupon) error
	UpdateCoupon(c *models.Coupon) error
	DeleteCoupon(code string) error
}

type couponRepository struct {
	store *store.Store
}

// NewCouponRepository creates a new instance of CouponRepository.
func NewCouponRepository(st *store.Store) CouponRepository {
	return &couponRepository{store: st}
}

// NormalizeCode upper-cases and trims a coupon code for storage and lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *couponRepository) GetCoupons() []models.Coupon {
	coupons := []models.Coupon{}
	r.store.Read(store.KeyCoupons, &coupons)
	return coupons
}

func (r *couponRepository) GetByCode(code string) (*models.Coupon, error) {
	code = NormalizeCode(code)
	for _, c := range r.GetCoupons() {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("coupon %q: %w", code, ErrNotFound)
}

func (r *couponRepository) CreateCoupon(c *models.Coupon) error {
	c.Code = NormalizeCode(c.Code)
	coupons := r.GetCoupons()
	for _, existing := range coupons {
		if existing.Code == c.Code {
			return fmt.Errorf("coupon %q: %w", c.Code, ErrDuplicateKey)
		}
	}
	coupons = append(coupons, *c)
	return r.store.Write(store.KeyCoupons, coupons)
}

func (r *couponRepository) UpdateCoupon(c *models.Coupon) error {
	c.Code = NormalizeCode(c.Code)
	coupons := r.GetCoupons()
	for i := range coupons {
		if coupons[i].Code == c.Code {
			coupons[i] = *c
			return r.store.Write(store.KeyCoupons, coupons)
		}
	}
	return fmt.Errorf("coupon %q: %w", c.Code, ErrNotFound)
}

func (r *couponRepository) DeleteCoupon(code string) error {
	code = NormalizeCode(code)
	coupons := r.GetCoupons()
	kept := make([]models.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.Code != code {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(coupons) {
		return fmt.Errorf("coupon %q: %w", code, ErrNotFound)
	}
	return r.store.Write(store.KeyCoupons, kept)
}
