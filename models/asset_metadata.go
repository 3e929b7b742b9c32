package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

// AssetMetaData is the one-to-one descriptive document for a
// cryptocurrency: whitepaper links, supply figures, whatever the
// ingestion side wants to attach.
type AssetMetaData struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	CryptoID    int64          `json:"crypto_id" gorm:"uniqueIndex" validate:"required"`
	MetaData    datatypes.JSON `json:"meta_data"`
	LastUpdated time.Time      `json:"last_updated"`
}

func (AssetMetaData) TableName() string {
	return "asset_metadata"
}

func CreateAssetMetaData(meta *AssetMetaData) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&Cryptocurrency{}).Where("id = ?", meta.CryptoID).Count(&count)
		if count == 0 {
			return fmt.Errorf("%w: cryptocurrency %d does not exist", ErrConstraintViolation, meta.CryptoID)
		}

		tx.Model(&AssetMetaData{}).Where("crypto_id = ?", meta.CryptoID).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: metadata for cryptocurrency %d already exists", ErrConstraintViolation, meta.CryptoID)
		}

		if meta.LastUpdated.IsZero() {
			meta.LastUpdated = time.Now().UTC()
		}

		return tx.Create(meta).Error
	})
}

func FindAssetMetaDataByCrypto(cryptoID int64) (*AssetMetaData, error) {
	var meta *AssetMetaData

	result := config.DataBase.First(&meta, "crypto_id = ?", cryptoID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: metadata for cryptocurrency %d", ErrNotFound, cryptoID)
	}

	return meta, result.Error
}

func (m *AssetMetaData) UpdateDocument(doc datatypes.JSON) error {
	m.MetaData = doc
	m.LastUpdated = time.Now().UTC()

	return config.DataBase.Model(m).Updates(map[string]interface{}{
		"meta_data":    m.MetaData,
		"last_updated": m.LastUpdated,
	}).Error
}
