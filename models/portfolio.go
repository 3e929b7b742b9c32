package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

// Portfolio aggregates a user's holdings. TotalValue is a stored field
// maintained by callers (see Revalue); this layer does not recompute it.
type Portfolio struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	UserID     int64           `json:"user_id" gorm:"index" validate:"required"`
	TotalValue decimal.Decimal `json:"total_value" gorm:"type:decimal(24,2);default:0.0"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

func CreatePortfolio(portfolio *Portfolio) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&User{}).Where("id = ?", portfolio.UserID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: user %d does not exist", ErrConstraintViolation, portfolio.UserID)
		}

		return tx.Create(portfolio).Error
	})
}

func FindPortfolioByID(id int64) (*Portfolio, error) {
	var portfolio *Portfolio

	result := config.DataBase.First(&portfolio, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: portfolio %d", ErrNotFound, id)
	}

	return portfolio, result.Error
}

func (p *Portfolio) Assets() ([]*PortfolioAsset, error) {
	var assets []*PortfolioAsset

	result := config.DataBase.Where("portfolio_id = ?", p.ID).Find(&assets)

	return assets, result.Error
}

func (p *Portfolio) User() (*User, error) {
	return FindUserByID(p.UserID)
}

// Revalue recomputes each asset's current value from the latest market
// data snapshot and the portfolio total from the assets, in one
// transaction. Assets whose cryptocurrency has no snapshot yet keep their
// stored value.
func (p *Portfolio) Revalue() error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var assets []*PortfolioAsset
		if err := tx.Where("portfolio_id = ?", p.ID).Find(&assets).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, asset := range assets {
			var data *MarketData

			result := tx.Where("crypto_id = ?", asset.CryptoID).Order("timestamp desc").First(&data)
			if result.Error == nil {
				asset.CurrentValue = data.Price.Mul(asset.Quantity).Round(2)
				if err := tx.Model(asset).Update("current_value", asset.CurrentValue).Error; err != nil {
					return err
				}
			} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}

			total = total.Add(asset.CurrentValue)
		}

		p.TotalValue = total

		return tx.Model(p).Update("total_value", total).Error
	})
}

// DeletePortfolio removes the portfolio and its assets atomically.
func DeletePortfolio(id int64) error {
	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var portfolio *Portfolio

		result := tx.First(&portfolio, id)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: portfolio %d", ErrNotFound, id)
		}
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Where("portfolio_id = ?", id).Delete(&PortfolioAsset{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Portfolio{}, id).Error
	})

	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: portfolio %d: %v", ErrCascadeFailed, id, err)
	}

	return err
}
