package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestMenuRepository_CreateAssignsDistinctIDs(t *testing.T) {
	repo := NewMenuRepository(newTestStore(t))

	a := models.MenuItem{Name: "Margherita", Category: "veg", Price: 299}
	b := models.MenuItem{Name: "Farmhouse", Category: "veg", Price: 449}
	require.NoError(t, repo.CreateItem(&a))
	require.NoError(t, repo.CreateItem(&b))

	assert.NotZero(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, repo.GetMenu(), 2)
}

func TestMenuRepository_UpdateAndDelete(t *testing.T) {
	repo := NewMenuRepository(newTestStore(t))

	item := models.MenuItem{Name: "Margherita", Category: "veg", Price: 299}
	require.NoError(t, repo.CreateItem(&item))

	item.Price = 349
	require.NoError(t, repo.UpdateItem(&item))
	got, err := repo.GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(349), got.Price)

	require.NoError(t, repo.DeleteItem(item.ID))
	_, err = repo.GetItemByID(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.UpdateItem(&item), ErrNotFound)
	assert.ErrorIs(t, repo.DeleteItem(item.ID), ErrNotFound)
}

func TestCouponRepository_CodesAreUniqueAndNormalized(t *testing.T) {
	repo := NewCouponRepository(newTestStore(t))

	c := models.Coupon{Code: "pizza50", DiscountPercent: 50, Active: true}
	require.NoError(t, repo.CreateCoupon(&c))
	assert.Equal(t, "PIZZA50", c.Code)

	dup := models.Coupon{Code: "Pizza50", DiscountPercent: 10, Active: true}
	assert.ErrorIs(t, repo.CreateCoupon(&dup), ErrDuplicateKey)

	got, err := repo.GetByCode("  pizza50 ")
	require.NoError(t, err)
	assert.Equal(t, 50, got.DiscountPercent)
}

func TestOrderRepository_UpdateStatusTouchesOnlyThatOrder(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t))

	first := models.Order{ID: "ORD-1", Phone: "111", Total: 599, Status: models.StatusPending, CreatedAt: time.Now().UTC()}
	second := models.Order{ID: "ORD-2", Phone: "222", Total: 299, Status: models.StatusPending, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Append(&first))
	require.NoError(t, repo.Append(&second))

	updated, err := repo.UpdateStatus("ORD-1", models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)

	history := repo.GetHistory()
	require.Len(t, history, 2)
	changed := history[0]
	assert.Equal(t, models.StatusDelivered, changed.Status)
	changed.Status = first.Status
	assert.Equal(t, first, changed) // every other field untouched
	assert.Equal(t, second, history[1])
}

func TestOrderRepository_UpdateStatusUnknownIDLeavesHistory(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t))
	require.NoError(t, repo.Append(&models.Order{ID: "ORD-1", Status: models.StatusPending}))

	_, err := repo.UpdateStatus("ORD-nope", models.StatusDelivered)
	assert.ErrorIs(t, err, ErrNotFound)

	history := repo.GetHistory()
	require.Len(t, history, 1)
	assert.Equal(t, models.StatusPending, history[0].Status)
}

func TestOrderRepository_ClearAll(t *testing.T) {
	repo := NewOrderRepository(newTestStore(t))
	require.NoError(t, repo.Append(&models.Order{ID: "ORD-1"}))
	require.NoError(t, repo.ClearAll())
	assert.Empty(t, repo.GetHistory())
}

func TestProfileRepository_OverwriteAndPointer(t *testing.T) {
	repo := NewProfileRepository(newTestStore(t))

	_, err := repo.GetProfile()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetLastOrderID()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.SaveProfile(&models.CustomerProfile{Name: "Asha", Phone: "111", Address: "Old Rd"}))
	require.NoError(t, repo.SaveProfile(&models.CustomerProfile{Name: "Asha", Phone: "111", Address: "New Rd"}))
	p, err := repo.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "New Rd", p.Address)

	require.NoError(t, repo.SetLastOrderID("ORD-7"))
	id, err := repo.GetLastOrderID()
	require.NoError(t, err)
	assert.Equal(t, "ORD-7", id)
}
