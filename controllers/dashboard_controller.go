package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/controllers/entities"
	"github.com/coinfolio/coinfolio/controllers/helpers"
	"github.com/coinfolio/coinfolio/jobs/cron"
	"github.com/coinfolio/coinfolio/models"
	"github.com/coinfolio/coinfolio/types"
)

// GetSummary serves the dashboard ticker summary from redis; on a cache
// miss it aggregates directly and backfills the key.
func GetSummary(c *fiber.Ctx) error {
	var summary types.MarketSummary

	if err := config.Redis.GetKey(cron.SummaryKey, &summary); err == nil {
		return c.Status(200).JSON(summary)
	}

	summary, err := cron.BuildMarketSummary()
	if err != nil {
		config.Logger.Errorf("Failed to build market summary: %v", err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	config.Redis.SetKey(cron.SummaryKey, summary, 5*time.Minute)

	return c.Status(200).JSON(summary)
}

func GetCryptocurrencies(c *fiber.Ctx) error {
	cryptos, err := models.ActiveCryptocurrencies()
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	crypto_entities := make([]*entities.CryptocurrencyEntity, 0, len(cryptos))
	for _, crypto := range cryptos {
		entity, err := entities.CryptocurrencyToEntity(crypto)
		if err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}

		crypto_entities = append(crypto_entities, entity)
	}

	return c.Status(200).JSON(crypto_entities)
}

type MarketDataQuery struct {
	From  int64 `query:"from"`
	To    int64 `query:"to"`
	Limit int   `query:"limit"`
}

func GetMarketData(c *fiber.Ctx) error {
	symbol := c.Params("symbol")

	crypto, err := models.FindCryptocurrencyBySymbol(symbol)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	params := new(MarketDataQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	var from, to time.Time
	if params.From > 0 {
		from = time.Unix(params.From, 0)
	}
	if params.To > 0 {
		to = time.Unix(params.To, 0)
	}
	if params.Limit == 0 {
		params.Limit = 100
	}

	rows, err := models.MarketDataWindow(crypto.ID, from, to, params.Limit)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	data_entities := make([]*entities.MarketDataEntity, 0, len(rows))
	for _, row := range rows {
		entity, err := entities.MarketDataToEntity(row)
		if err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}

		data_entities = append(data_entities, entity)
	}

	return c.Status(200).JSON(data_entities)
}

func GetAssetMetaData(c *fiber.Ctx) error {
	symbol := c.Params("symbol")

	crypto, err := models.FindCryptocurrencyBySymbol(symbol)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	meta, err := models.FindAssetMetaDataByCrypto(crypto.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{"record.not_found"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.AssetMetaDataToEntity(meta)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}
