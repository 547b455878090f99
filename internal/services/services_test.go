package services

import (
	"path/filepath"
	"testing"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/repositories"
	"dpizza_backend/internal/store"

	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over a throwaway store file, the
// same way router.Setup does in production.
type testEnv struct {
	store    *store.Store
	menuRepo repositories.MenuRepository
	catalog  CatalogService
	menu     MenuService
	coupons  CouponService
	cart     CartService
	orders   OrderService
	customer CustomerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	menuRepo := repositories.NewMenuRepository(st)
	couponRepo := repositories.NewCouponRepository(st)
	orderRepo := repositories.NewOrderRepository(st)
	profileRepo := repositories.NewProfileRepository(st)

	catalog := NewCatalogService(menuRepo)
	coupons := NewCouponService(couponRepo)
	cart := NewCartService(catalog, coupons, orderRepo)

	return &testEnv{
		store:    st,
		menuRepo: menuRepo,
		catalog:  catalog,
		menu:     NewMenuService(menuRepo),
		coupons:  coupons,
		cart:     cart,
		orders:   NewOrderService(cart, coupons, orderRepo, profileRepo),
		customer: NewCustomerService(orderRepo),
	}
}

// seedMenu installs the two-item default menu and returns it. Prices match
// the storefront defaults: Margherita 299, Farmhouse 449.
func seedMenu(t *testing.T, env *testEnv) []models.MenuItem {
	t.Helper()
	require.NoError(t, env.catalog.EnsureSeeded())
	menu := env.menuRepo.GetMenu()
	require.Len(t, menu, 2)
	return menu
}

// seedCoupon installs a coupon directly through the admin service.
func seedCoupon(t *testing.T, env *testEnv, code string, percent int, active bool) {
	t.Helper()
	_, err := env.coupons.CreateCoupon(CreateCouponRequest{
		Code:            code,
		DiscountPercent: percent,
		Active:          &active,
	})
	require.NoError(t, err)
}
