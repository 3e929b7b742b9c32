package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/types"
)

// Order records a buy or sell of one cryptocurrency by one user. Status
// moves only along the transitions below; there is no matching engine
// behind it, so "filled" is set by whoever settles the order.
type Order struct {
	ID        int64             `json:"id" gorm:"primaryKey"`
	UserID    int64             `json:"user_id" gorm:"index" validate:"required"`
	CryptoID  int64             `json:"crypto_id" gorm:"index" validate:"required"`
	OrderType types.OrderType   `json:"order_type" gorm:"size:50" validate:"required"`
	Price     decimal.Decimal   `json:"price" gorm:"type:decimal(18,8)" validate:"required"`
	Quantity  decimal.Decimal   `json:"quantity" gorm:"type:decimal(24,8)" validate:"required"`
	Status    types.OrderStatus `json:"status" gorm:"size:50;default:pending"`
	CreatedAt time.Time         `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

var orderTransitions = map[types.OrderStatus][]types.OrderStatus{
	types.StatusPending: {types.StatusOpen, types.StatusCancelled, types.StatusRejected},
	types.StatusOpen:    {types.StatusFilled, types.StatusCancelled},
}

func CanTransitionOrder(from, to types.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func ValidOrderType(t types.OrderType) bool {
	return t == types.TypeBuy || t == types.TypeSell
}

func CreateOrder(order *Order) error {
	if !ValidOrderType(order.OrderType) {
		return fmt.Errorf("%w: unknown order type %s", ErrConstraintViolation, order.OrderType)
	}
	if order.Price.LessThanOrEqual(decimal.Zero) || order.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price and quantity must be positive", ErrConstraintViolation)
	}

	if len(order.Status) == 0 {
		order.Status = types.StatusPending
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&User{}).Where("id = ?", order.UserID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: user %d does not exist", ErrConstraintViolation, order.UserID)
		}

		tx.Model(&Cryptocurrency{}).Where("id = ?", order.CryptoID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: cryptocurrency %d does not exist", ErrConstraintViolation, order.CryptoID)
		}

		return tx.Create(order).Error
	})
}

func FindOrderByID(id int64) (*Order, error) {
	var order *Order

	result := config.DataBase.First(&order, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}

	return order, result.Error
}

func FindUserOrder(userID, id int64) (*Order, error) {
	var order *Order

	result := config.DataBase.First(&order, "id = ? AND user_id = ?", id, userID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}

	return order, result.Error
}

func UserOrders(userID int64) ([]*Order, error) {
	var orders []*Order

	result := config.DataBase.Where("user_id = ?", userID).Order("id desc").Find(&orders)

	return orders, result.Error
}

// UpdateOrderStatus moves the order along the transition table inside one
// transaction, so two concurrent cancels or fills cannot both win.
func UpdateOrderStatus(id int64, to types.OrderStatus) (*Order, error) {
	var order *Order

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		result := tx.First(&order, id)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		if result.Error != nil {
			return result.Error
		}

		if !CanTransitionOrder(order.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
		}

		order.Status = to

		return tx.Model(order).Update("status", to).Error
	})

	return order, err
}

func (o *Order) User() (*User, error) {
	return FindUserByID(o.UserID)
}

func (o *Order) Cryptocurrency() (*Cryptocurrency, error) {
	return FindCryptocurrencyByID(o.CryptoID)
}
