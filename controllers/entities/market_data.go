package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio/models"
)

type MarketDataEntity struct {
	ID        int64           `json:"id"`
	CryptoID  int64           `json:"crypto_id"`
	Timestamp time.Time       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
	MarketCap decimal.Decimal `json:"market_cap"`
	Change24h int             `json:"change_24h"`
	Change7d  int             `json:"change_7d"`
}

func MarketDataToEntity(data *models.MarketData) (*MarketDataEntity, error) {
	if data == nil || data.CryptoID == 0 || data.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: market data is missing required fields", models.ErrSerialization)
	}

	return &MarketDataEntity{
		ID:        data.ID,
		CryptoID:  data.CryptoID,
		Timestamp: data.Timestamp,
		Price:     data.Price,
		Open:      data.Open,
		High:      data.High,
		Low:       data.Low,
		Close:     data.Close,
		Volume:    data.Volume,
		MarketCap: data.MarketCap,
		Change24h: data.Change24h,
		Change7d:  data.Change7d,
	}, nil
}
