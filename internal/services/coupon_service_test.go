package services

import (
	"testing"

	"dpizza_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponService_ResolveIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	seedCoupon(t, env, "PIZZA50", 50, true)

	coupon, err := env.coupons.Resolve("pizza50")
	require.NoError(t, err)
	assert.Equal(t, "PIZZA50", coupon.Code)
	assert.Equal(t, 50, coupon.DiscountPercent)
}

func TestCouponService_ResolveMisses(t *testing.T) {
	env := newTestEnv(t)
	seedCoupon(t, env, "RETIRED10", 10, false)

	_, err := env.coupons.Resolve("RETIRED10")
	assert.ErrorIs(t, err, ErrCouponNotFound) // inactive

	_, err = env.coupons.Resolve("ABSENT")
	assert.ErrorIs(t, err, ErrCouponNotFound)

	_, err = env.coupons.Resolve("")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestCouponService_DiscountForFloors(t *testing.T) {
	env := newTestEnv(t)

	half := &models.Coupon{Code: "HALF", DiscountPercent: 50, Active: true}
	assert.Equal(t, int64(598), env.coupons.DiscountFor(half, 1197))

	ten := &models.Coupon{Code: "TEN", DiscountPercent: 10, Active: true}
	assert.Equal(t, int64(29), env.coupons.DiscountFor(ten, 299))

	full := &models.Coupon{Code: "FREE", DiscountPercent: 100, Active: true}
	assert.Equal(t, int64(1197), env.coupons.DiscountFor(full, 1197)) // never exceeds subtotal

	assert.Zero(t, env.coupons.DiscountFor(nil, 1197))
}

func TestCouponService_CreateValidates(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.coupons.CreateCoupon(CreateCouponRequest{Code: "  ", DiscountPercent: 10})
	assert.ErrorIs(t, err, ErrCouponValidation)

	_, err = env.coupons.CreateCoupon(CreateCouponRequest{Code: "X", DiscountPercent: 101})
	assert.ErrorIs(t, err, ErrCouponValidation)

	// Active defaults to true when omitted.
	coupon, err := env.coupons.CreateCoupon(CreateCouponRequest{Code: "new5", DiscountPercent: 5})
	require.NoError(t, err)
	assert.True(t, coupon.Active)
	assert.Equal(t, "NEW5", coupon.Code)

	_, err = env.coupons.CreateCoupon(CreateCouponRequest{Code: "NEW5", DiscountPercent: 5})
	assert.ErrorIs(t, err, ErrCouponExists)
}

func TestCouponService_SoftRetireAndDelete(t *testing.T) {
	env := newTestEnv(t)
	seedCoupon(t, env, "PIZZA50", 50, true)

	inactive := false
	coupon, err := env.coupons.UpdateCoupon("pizza50", UpdateCouponRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, coupon.Active)

	// Retired coupons stay listed but no longer resolve.
	assert.Len(t, env.coupons.GetCoupons(), 1)
	_, err = env.coupons.Resolve("PIZZA50")
	assert.ErrorIs(t, err, ErrCouponNotFound)

	require.NoError(t, env.coupons.DeleteCoupon("PIZZA50"))
	assert.Empty(t, env.coupons.GetCoupons())
	assert.ErrorIs(t, env.coupons.DeleteCoupon("PIZZA50"), ErrCouponNotFound)
}
