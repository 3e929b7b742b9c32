package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

// Cryptocurrency is the root of the market side of the model. It owns its
// market data, metadata, portfolio holdings and orders: deleting a
// cryptocurrency removes all of them.
type Cryptocurrency struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	Symbol      string      `json:"symbol" gorm:"uniqueIndex;size:10" validate:"required"`
	Description null.String `json:"description"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (Cryptocurrency) TableName() string {
	return "cryptocurrencies"
}

func CreateCryptocurrency(crypto *Cryptocurrency) error {
	if len(crypto.Symbol) == 0 {
		return fmt.Errorf("%w: symbol is required", ErrConstraintViolation)
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&Cryptocurrency{}).Where("symbol = ?", crypto.Symbol).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: duplicate symbol %s", ErrConstraintViolation, crypto.Symbol)
		}

		return tx.Create(crypto).Error
	})
}

func FindCryptocurrencyByID(id int64) (*Cryptocurrency, error) {
	var crypto *Cryptocurrency

	result := config.DataBase.First(&crypto, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cryptocurrency %d", ErrNotFound, id)
	}

	return crypto, result.Error
}

func FindCryptocurrencyBySymbol(symbol string) (*Cryptocurrency, error) {
	var crypto *Cryptocurrency

	result := config.DataBase.First(&crypto, "symbol = ?", symbol)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cryptocurrency %s", ErrNotFound, symbol)
	}

	return crypto, result.Error
}

func ActiveCryptocurrencies() ([]*Cryptocurrency, error) {
	var cryptos []*Cryptocurrency

	result := config.DataBase.Where("is_active = ?", true).Order("symbol asc").Find(&cryptos)

	return cryptos, result.Error
}

func UpdateCryptocurrency(crypto *Cryptocurrency) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&Cryptocurrency{}).Where("symbol = ? AND id <> ?", crypto.Symbol, crypto.ID).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: duplicate symbol %s", ErrConstraintViolation, crypto.Symbol)
		}

		return tx.Save(crypto).Error
	})
}

// DeleteCryptocurrency removes the row and every dependent row: market
// data, metadata, portfolio assets and orders. All or nothing.
func DeleteCryptocurrency(id int64) error {
	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var crypto *Cryptocurrency

		result := tx.First(&crypto, id)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cryptocurrency %d", ErrNotFound, id)
		}
		if result.Error != nil {
			return result.Error
		}

		for _, dependent := range []interface{}{
			&MarketData{},
			&AssetMetaData{},
			&PortfolioAsset{},
			&Order{},
		} {
			if err := tx.Where("crypto_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&Cryptocurrency{}, id).Error
	})

	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: cryptocurrency %d: %v", ErrCascadeFailed, id, err)
	}

	return err
}
