package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio/types"
)

func createOrderFixture(t *testing.T) *Order {
	t.Helper()

	crypto := mustCreateCrypto(t, "BTC")
	user := mustCreateUser(t, "a@x.com", "alice")

	order := &Order{
		UserID:    user.ID,
		CryptoID:  crypto.ID,
		OrderType: types.TypeBuy,
		Price:     decimal.RequireFromString("65000"),
		Quantity:  decimal.RequireFromString("0.25"),
	}
	require.NoError(t, CreateOrder(order))

	return order
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	setupTestDB(t)

	order := createOrderFixture(t)
	assert.Equal(t, types.StatusPending, order.Status)
}

func TestCreateOrderRejectsUnknownType(t *testing.T) {
	setupTestDB(t)

	err := CreateOrder(&Order{
		UserID:    1,
		CryptoID:  1,
		OrderType: "short",
		Price:     decimal.RequireFromString("1"),
		Quantity:  decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestCreateOrderRejectsNonPositiveAmounts(t *testing.T) {
	setupTestDB(t)

	err := CreateOrder(&Order{
		UserID:    1,
		CryptoID:  1,
		OrderType: types.TypeBuy,
		Price:     decimal.Zero,
		Quantity:  decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestCreateOrderRequiresExistingReferences(t *testing.T) {
	setupTestDB(t)

	crypto := mustCreateCrypto(t, "BTC")

	err := CreateOrder(&Order{
		UserID:    1234,
		CryptoID:  crypto.ID,
		OrderType: types.TypeBuy,
		Price:     decimal.RequireFromString("1"),
		Quantity:  decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	user := mustCreateUser(t, "a@x.com", "alice")

	err = CreateOrder(&Order{
		UserID:    user.ID,
		CryptoID:  1234,
		OrderType: types.TypeBuy,
		Price:     decimal.RequireFromString("1"),
		Quantity:  decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestOrderStatusTransitions(t *testing.T) {
	setupTestDB(t)

	order := createOrderFixture(t)

	// pending -> filled skips open and is rejected.
	_, err := UpdateOrderStatus(order.ID, types.StatusFilled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	opened, err := UpdateOrderStatus(order.ID, types.StatusOpen)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOpen, opened.Status)

	filled, err := UpdateOrderStatus(order.ID, types.StatusFilled)
	require.NoError(t, err)
	assert.Equal(t, types.StatusFilled, filled.Status)

	// Terminal states accept nothing.
	_, err = UpdateOrderStatus(order.ID, types.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderCancelFromPending(t *testing.T) {
	setupTestDB(t)

	order := createOrderFixture(t)

	cancelled, err := UpdateOrderStatus(order.ID, types.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCancelled, cancelled.Status)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateOrderStatus(77, types.StatusOpen)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserOrdersScopedToOwner(t *testing.T) {
	setupTestDB(t)

	order := createOrderFixture(t)
	other := mustCreateUser(t, "b@x.com", "bob")

	orders, err := UserOrders(order.UserID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = UserOrders(other.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = FindUserOrder(other.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
