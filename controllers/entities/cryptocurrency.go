package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coinfolio/coinfolio/models"
)

type CryptocurrencyEntity struct {
	ID          int64     `json:"id"`
	Symbol      string    `json:"symbol"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type AssetMetaDataEntity struct {
	CryptoID    int64           `json:"crypto_id"`
	MetaData    json.RawMessage `json:"meta_data"`
	LastUpdated time.Time       `json:"last_updated"`
}

func CryptocurrencyToEntity(crypto *models.Cryptocurrency) (*CryptocurrencyEntity, error) {
	if crypto == nil || crypto.ID == 0 || len(crypto.Symbol) == 0 {
		return nil, fmt.Errorf("%w: cryptocurrency is missing required fields", models.ErrSerialization)
	}

	return &CryptocurrencyEntity{
		ID:          crypto.ID,
		Symbol:      crypto.Symbol,
		Description: crypto.Description.String,
		IsActive:    crypto.IsActive,
		CreatedAt:   crypto.CreatedAt,
	}, nil
}

func AssetMetaDataToEntity(meta *models.AssetMetaData) (*AssetMetaDataEntity, error) {
	if meta == nil || meta.CryptoID == 0 {
		return nil, fmt.Errorf("%w: metadata is missing required fields", models.ErrSerialization)
	}

	return &AssetMetaDataEntity{
		CryptoID:    meta.CryptoID,
		MetaData:    json.RawMessage(meta.MetaData),
		LastUpdated: meta.LastUpdated,
	}, nil
}
