package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

// MarketData is a timestamped price snapshot for one cryptocurrency.
// Nothing prevents two snapshots with the same (crypto, timestamp); the
// ingestion side is trusted to not duplicate.
type MarketData struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	CryptoID  int64           `json:"crypto_id" gorm:"index" validate:"required"`
	Timestamp time.Time       `json:"timestamp" validate:"required"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(18,8)" validate:"required"`
	Open      decimal.Decimal `json:"open" gorm:"type:decimal(18,8)"`
	High      decimal.Decimal `json:"high" gorm:"type:decimal(18,8)"`
	Low       decimal.Decimal `json:"low" gorm:"type:decimal(18,8)"`
	Close     decimal.Decimal `json:"close" gorm:"type:decimal(24,8)"`
	Volume    decimal.Decimal `json:"volume" gorm:"type:decimal(24,8)"`
	MarketCap decimal.Decimal `json:"market_cap" gorm:"type:decimal(24,2)"`
	Change24h int             `json:"change_24h"`
	Change7d  int             `json:"change_7d"`
}

func (MarketData) TableName() string {
	return "market_data"
}

func CreateMarketData(data *MarketData) error {
	if data.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: non-positive price", ErrConstraintViolation)
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&Cryptocurrency{}).Where("id = ?", data.CryptoID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: cryptocurrency %d does not exist", ErrConstraintViolation, data.CryptoID)
		}

		return tx.Create(data).Error
	})
}

func FindMarketDataByID(id int64) (*MarketData, error) {
	var data *MarketData

	result := config.DataBase.First(&data, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: market data %d", ErrNotFound, id)
	}

	return data, result.Error
}

// LatestMarketData returns the most recent snapshot for a cryptocurrency,
// or ErrNotFound when no snapshot has been recorded yet.
func LatestMarketData(cryptoID int64) (*MarketData, error) {
	var data *MarketData

	result := config.DataBase.Where("crypto_id = ?", cryptoID).Order("timestamp desc").First(&data)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: market data for cryptocurrency %d", ErrNotFound, cryptoID)
	}

	return data, result.Error
}

func MarketDataWindow(cryptoID int64, from, to time.Time, limit int) ([]*MarketData, error) {
	var rows []*MarketData

	tx := config.DataBase.Where("crypto_id = ?", cryptoID)
	if !from.IsZero() {
		tx = tx.Where("timestamp >= ?", from)
	}
	if !to.IsZero() {
		tx = tx.Where("timestamp <= ?", to)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	result := tx.Order("timestamp desc").Find(&rows)

	return rows, result.Error
}
