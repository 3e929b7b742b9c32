package helpers

import (
	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio/types"
)

type RegisterPayload struct {
	Email    string `json:"email" validate:"required|email" message:"required:auth.register.invalid_email"`
	Username string `json:"username" validate:"required|minLen:3" message:"required:auth.register.invalid_username"`
	Password string `json:"password" validate:"required|minLen:8" message:"required:auth.register.invalid_password"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateOrderPayload struct {
	Symbol    string          `json:"symbol" validate:"required"`
	OrderType types.OrderType `json:"order_type" validate:"required|in:buy,sell"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

type CreatePortfolioAssetPayload struct {
	Symbol      string          `json:"symbol" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	AvgBuyPrice decimal.Decimal `json:"avg_buy_price"`
}

type UpdateProfilePayload struct {
	Email    string `json:"email" validate:"required|email"`
	Username string `json:"username" validate:"required|minLen:3"`
}

type UpdatePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required|minLen:8"`
}
