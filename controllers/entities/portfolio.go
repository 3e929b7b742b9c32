package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio/models"
)

type PortfolioEntity struct {
	ID         int64                   `json:"id"`
	UserID     int64                   `json:"user_id"`
	TotalValue decimal.Decimal         `json:"total_value"`
	CreatedAt  time.Time               `json:"created_at"`
	Assets     []*PortfolioAssetEntity `json:"assets"`
}

type PortfolioAssetEntity struct {
	ID           int64           `json:"id"`
	PortfolioID  int64           `json:"portfolio_id"`
	CryptoID     int64           `json:"crypto_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgBuyPrice  decimal.Decimal `json:"avg_buy_price"`
	CurrentValue decimal.Decimal `json:"current_value"`
}

func PortfolioAssetToEntity(asset *models.PortfolioAsset) (*PortfolioAssetEntity, error) {
	if asset == nil || asset.PortfolioID == 0 || asset.CryptoID == 0 {
		return nil, fmt.Errorf("%w: portfolio asset is missing required fields", models.ErrSerialization)
	}

	return &PortfolioAssetEntity{
		ID:           asset.ID,
		PortfolioID:  asset.PortfolioID,
		CryptoID:     asset.CryptoID,
		Quantity:     asset.Quantity,
		AvgBuyPrice:  asset.AvgBuyPrice,
		CurrentValue: asset.CurrentValue,
	}, nil
}

func PortfolioToEntity(portfolio *models.Portfolio, assets []*models.PortfolioAsset) (*PortfolioEntity, error) {
	if portfolio == nil || portfolio.ID == 0 || portfolio.UserID == 0 {
		return nil, fmt.Errorf("%w: portfolio is missing required fields", models.ErrSerialization)
	}

	asset_entities := make([]*PortfolioAssetEntity, 0, len(assets))
	for _, asset := range assets {
		entity, err := PortfolioAssetToEntity(asset)
		if err != nil {
			return nil, err
		}

		asset_entities = append(asset_entities, entity)
	}

	return &PortfolioEntity{
		ID:         portfolio.ID,
		UserID:     portfolio.UserID,
		TotalValue: portfolio.TotalValue,
		CreatedAt:  portfolio.CreatedAt,
		Assets:     asset_entities,
	}, nil
}
