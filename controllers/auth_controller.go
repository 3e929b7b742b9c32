package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/coinfolio/coinfolio/controllers/auth"
	"github.com/coinfolio/coinfolio/controllers/entities"
	"github.com/coinfolio/coinfolio/controllers/helpers"
	"github.com/coinfolio/coinfolio/models"
)

const sessionTTL = 24 * time.Hour

func Register(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	payload := new(helpers.RegisterPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	user := &models.User{
		Email:        payload.Email,
		Username:     payload.Username,
		PasswordHash: string(hash),
	}

	if err := models.CreateUser(user); err != nil {
		if errors.Is(err, models.ErrConstraintViolation) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"auth.register.duplicate_credentials"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.UserToLoginEntity(user)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(entity)
}

func Login(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	payload := new(helpers.LoginPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	user, err := models.FindUserByEmail(payload.Email)
	if err != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"auth.login.invalid_credentials"},
		})
	}

	if !user.IsActive {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.account_locked"},
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)) != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"auth.login.invalid_credentials"},
		})
	}

	if err := user.TouchLastLogin(); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	token, err := auth.GenerateToken(user, sessionTTL)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.UserToLoginEntity(user)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"token": token,
		"user":  entity,
	})
}

func GetMe(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	entity, err := entities.UserToLoginEntity(CurrentUser)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}
