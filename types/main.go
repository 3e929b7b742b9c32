package types

type OrderType = string

var (
	TypeBuy  OrderType = "buy"
	TypeSell OrderType = "sell"
)

type OrderStatus = string

var (
	StatusPending   OrderStatus = "pending"
	StatusOpen      OrderStatus = "open"
	StatusFilled    OrderStatus = "filled"
	StatusCancelled OrderStatus = "cancelled"
	StatusRejected  OrderStatus = "rejected"
)

// MarketSummary is the cached dashboard aggregate refreshed by the cron
// daemon and served from redis by the dashboard group.
type MarketSummary struct {
	UpdatedAt int64          `json:"updated_at"`
	Tickers   []MarketTicker `json:"tickers"`
}

type MarketTicker struct {
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	Volume    string `json:"volume"`
	MarketCap string `json:"market_cap"`
	Change24h int    `json:"change_24h"`
	Change7d  int    `json:"change_7d"`
}
