package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio/models"
	"github.com/coinfolio/coinfolio/types"
)

type OrderEntity struct {
	ID        int64             `json:"id"`
	CryptoID  int64             `json:"crypto_id"`
	OrderType types.OrderType   `json:"order_type"`
	Price     decimal.Decimal   `json:"price"`
	Quantity  decimal.Decimal   `json:"quantity"`
	Status    types.OrderStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func OrderToEntity(order *models.Order) (*OrderEntity, error) {
	if order == nil || order.ID == 0 || order.CryptoID == 0 || len(order.OrderType) == 0 {
		return nil, fmt.Errorf("%w: order is missing required fields", models.ErrSerialization)
	}

	return &OrderEntity{
		ID:        order.ID,
		CryptoID:  order.CryptoID,
		OrderType: order.OrderType,
		Price:     order.Price,
		Quantity:  order.Quantity,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}, nil
}
