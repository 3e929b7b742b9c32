package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coinfolio/coinfolio/controllers/auth"
	"github.com/coinfolio/coinfolio/controllers/entities"
	"github.com/coinfolio/coinfolio/controllers/helpers"
	"github.com/coinfolio/coinfolio/models"
)

func CreatePortfolio(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	portfolio := &models.Portfolio{UserID: CurrentUser.ID}

	if err := models.CreatePortfolio(portfolio); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.PortfolioToEntity(portfolio, nil)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(entity)
}

func GetPortfolios(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	portfolios, err := CurrentUser.Portfolios()
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	portfolio_entities := make([]*entities.PortfolioEntity, 0, len(portfolios))
	for _, portfolio := range portfolios {
		assets, err := portfolio.Assets()
		if err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}

		entity, err := entities.PortfolioToEntity(portfolio, assets)
		if err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}

		portfolio_entities = append(portfolio_entities, entity)
	}

	return c.Status(200).JSON(portfolio_entities)
}

// ownedPortfolio loads the :id portfolio and checks it belongs to the
// current user.
func ownedPortfolio(c *fiber.Ctx) (*models.Portfolio, error) {
	CurrentUser := auth.GetCurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, err
	}

	portfolio, err := models.FindPortfolioByID(int64(id))
	if err != nil {
		return nil, err
	}

	if portfolio.UserID != CurrentUser.ID {
		return nil, models.ErrNotFound
	}

	return portfolio, nil
}

func GetPortfolioByID(c *fiber.Ctx) error {
	portfolio, err := ownedPortfolio(c)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	assets, err := portfolio.Assets()
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.PortfolioToEntity(portfolio, assets)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}

func DeletePortfolioByID(c *fiber.Ctx) error {
	portfolio, err := ownedPortfolio(c)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if err := models.DeletePortfolio(portfolio.ID); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"deleted": portfolio.ID})
}

func CreatePortfolioAsset(c *fiber.Ctx) error {
	portfolio, err := ownedPortfolio(c)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.CreatePortfolioAssetPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	crypto, err := models.FindCryptocurrencyBySymbol(payload.Symbol)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"portfolio.asset.unknown_symbol"},
		})
	}

	asset := &models.PortfolioAsset{
		PortfolioID: portfolio.ID,
		CryptoID:    crypto.ID,
		Quantity:    payload.Quantity,
		AvgBuyPrice: payload.AvgBuyPrice,
	}

	if err := models.CreatePortfolioAsset(asset); err != nil {
		if errors.Is(err, models.ErrConstraintViolation) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"portfolio.asset.already_held"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.PortfolioAssetToEntity(asset)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(entity)
}

func DeletePortfolioAssetByID(c *fiber.Ctx) error {
	portfolio, err := ownedPortfolio(c)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	assetID, err := c.ParamsInt("asset_id")
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_query"},
		})
	}

	asset, err := models.FindPortfolioAssetByID(int64(assetID))
	if err != nil || asset.PortfolioID != portfolio.ID {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if err := models.DeletePortfolioAsset(asset.ID); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"deleted": asset.ID})
}

func RevaluePortfolio(c *fiber.Ctx) error {
	portfolio, err := ownedPortfolio(c)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if err := portfolio.Revalue(); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	assets, err := portfolio.Assets()
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.PortfolioToEntity(portfolio, assets)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}
