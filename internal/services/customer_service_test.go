package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitOrder(t *testing.T, env *testEnv, itemID int64, form SubmitOrderRequest) {
	t.Helper()
	env.cart.Add("s", itemID)
	_, err := env.orders.Submit("s", form)
	require.NoError(t, err)
}

func TestCustomerService_AggregateGroupsByPhone(t *testing.T) {
	env := newTestEnv(t)
	menu := seedMenu(t, env)

	asha := SubmitOrderRequest{Name: "Asha", Phone: "111", Address: "Old Rd", PaymentMethod: "cod"}
	ravi := SubmitOrderRequest{Name: "Ravi", Phone: "222", Address: "Mill Ln", PaymentMethod: "upi"}

	submitOrder(t, env, menu[0].ID, asha) // 299
	submitOrder(t, env, menu[1].ID, ravi) // 449
	asha.Address = "New Rd"
	submitOrder(t, env, menu[1].ID, asha) // 449

	rollups := env.customer.Aggregate()
	require.Len(t, rollups, 2)

	// First-seen order preserved.
	assert.Equal(t, "111", rollups[0].Phone)
	assert.Equal(t, "Asha", rollups[0].Name)
	assert.Equal(t, 2, rollups[0].OrderCount)
	assert.Equal(t, int64(748), rollups[0].LifetimeValue)
	// The most recent order's address wins.
	assert.Equal(t, "New Rd", rollups[0].LastAddress)

	assert.Equal(t, "222", rollups[1].Phone)
	assert.Equal(t, 1, rollups[1].OrderCount)
	assert.Equal(t, int64(449), rollups[1].LifetimeValue)
}

func TestCustomerService_AggregateIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	menu := seedMenu(t, env)

	form := SubmitOrderRequest{Name: "Asha", Phone: "111", Address: "Old Rd", PaymentMethod: "cod"}
	submitOrder(t, env, menu[0].ID, form)
	submitOrder(t, env, menu[1].ID, form)

	first := env.customer.Aggregate()
	second := env.customer.Aggregate()
	assert.Equal(t, first, second)
}

func TestCustomerService_AggregateOnEmptyHistory(t *testing.T) {
	env := newTestEnv(t)
	assert.Empty(t, env.customer.Aggregate())

	summary := env.customer.Summary()
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalCustomers)
}

func TestCustomerService_Summary(t *testing.T) {
	env := newTestEnv(t)
	menu := seedMenu(t, env)

	asha := SubmitOrderRequest{Name: "Asha", Phone: "111", Address: "Old Rd", PaymentMethod: "cod"}
	ravi := SubmitOrderRequest{Name: "Ravi", Phone: "222", Address: "Mill Ln", PaymentMethod: "upi"}
	submitOrder(t, env, menu[0].ID, asha)
	submitOrder(t, env, menu[0].ID, asha)
	submitOrder(t, env, menu[1].ID, ravi)

	summary := env.customer.Summary()
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, int64(299+299+449), summary.TotalSales)
	assert.Equal(t, 2, summary.TotalCustomers)
}
