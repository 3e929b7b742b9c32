package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coinfolio/coinfolio/controllers/auth"
	"github.com/coinfolio/coinfolio/controllers/entities"
	"github.com/coinfolio/coinfolio/controllers/helpers"
	"github.com/coinfolio/coinfolio/models"
	"github.com/coinfolio/coinfolio/types"
)

func CreateOrder(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	errs := new(helpers.Errors)
	payload := new(helpers.CreateOrderPayload)

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
			Errors: []string{"trade.order.unknown_symbol"},
		})
	}

	order := &models.Order{
		UserID:    CurrentUser.ID,
		CryptoID:  crypto.ID,
		OrderType: payload.OrderType,
		Price:     payload.Price,
		Quantity:  payload.Quantity,
		Status:    types.StatusPending,
	}

	if err := models.CreateOrder(order); err != nil {
		if errors.Is(err, models.ErrConstraintViolation) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"trade.order.invalid_order"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.OrderToEntity(order)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(entity)
}

func GetOrders(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	orders, err := models.UserOrders(CurrentUser.ID)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	order_entities := make([]*entities.OrderEntity, 0, len(orders))
	for _, order := range orders {
		entity, err := entities.OrderToEntity(order)
		if err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}

		order_entities = append(order_entities, entity)
	}

	return c.Status(200).JSON(order_entities)
}

func GetOrderByID(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_query"},
		})
	}

	order, err := models.FindUserOrder(CurrentUser.ID, int64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	entity, err := entities.OrderToEntity(order)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}

func CancelOrderByID(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_query"},
		})
	}

	if _, err := models.FindUserOrder(CurrentUser.ID, int64(id)); err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	order, err := models.UpdateOrderStatus(int64(id), types.StatusCancelled)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"trade.order.invalid_transition"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.OrderToEntity(order)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}
