package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

// PortfolioAsset links one portfolio to one cryptocurrency. The pair is
// unique: a portfolio holds at most one row per cryptocurrency, but any
// number of rows overall, and a cryptocurrency may appear in any number
// of portfolios.
type PortfolioAsset struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	PortfolioID  int64           `json:"portfolio_id" gorm:"uniqueIndex:idx_portfolio_crypto" validate:"required"`
	CryptoID     int64           `json:"crypto_id" gorm:"uniqueIndex:idx_portfolio_crypto" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" gorm:"type:decimal(24,8)" validate:"required"`
	AvgBuyPrice  decimal.Decimal `json:"avg_buy_price" gorm:"type:decimal(18,8)"`
	CurrentValue decimal.Decimal `json:"current_value" gorm:"type:decimal(24,2);default:0.0"`
}

func (PortfolioAsset) TableName() string {
	return "portfolio_assets"
}

func CreatePortfolioAsset(asset *PortfolioAsset) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&Portfolio{}).Where("id = ?", asset.PortfolioID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: portfolio %d does not exist", ErrConstraintViolation, asset.PortfolioID)
		}

		tx.Model(&Cryptocurrency{}).Where("id = ?", asset.CryptoID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: cryptocurrency %d does not exist", ErrConstraintViolation, asset.CryptoID)
		}

		tx.Model(&PortfolioAsset{}).
			Where("portfolio_id = ? AND crypto_id = ?", asset.PortfolioID, asset.CryptoID).
			Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: portfolio %d already holds cryptocurrency %d", ErrConstraintViolation, asset.PortfolioID, asset.CryptoID)
		}

		return tx.Create(asset).Error
	})
}

func FindPortfolioAssetByID(id int64) (*PortfolioAsset, error) {
	var asset *PortfolioAsset

	result := config.DataBase.First(&asset, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: portfolio asset %d", ErrNotFound, id)
	}

	return asset, result.Error
}

func UpdatePortfolioAsset(asset *PortfolioAsset) error {
	return config.DataBase.Save(asset).Error
}

func DeletePortfolioAsset(id int64) error {
	result := config.DataBase.Delete(&PortfolioAsset{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: portfolio asset %d", ErrNotFound, id)
	}

	return nil
}
