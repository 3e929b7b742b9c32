package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/controllers/auth"
	"github.com/coinfolio/coinfolio/controllers/entities"
	"github.com/coinfolio/coinfolio/controllers/helpers"
	"github.com/coinfolio/coinfolio/models"
)

func GetProfile(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	entity, err := entities.UserToProfileEntity(CurrentUser)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}

func UpdateProfile(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	errs := new(helpers.Errors)
	payload := new(helpers.UpdateProfilePayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	CurrentUser.Email = payload.Email
	CurrentUser.Username = payload.Username

	if err := models.UpdateUser(CurrentUser); err != nil {
		if errors.Is(err, models.ErrConstraintViolation) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"settings.profile.duplicate_credentials"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	entity, err := entities.UserToProfileEntity(CurrentUser)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entity)
}

func UpdatePassword(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	errs := new(helpers.Errors)
	payload := new(helpers.UpdatePasswordPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if bcrypt.CompareHashAndPassword([]byte(CurrentUser.PasswordHash), []byte(payload.OldPassword)) != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"settings.password.invalid_old_password"},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	CurrentUser.PasswordHash = string(hash)

	if err := models.UpdateUser(CurrentUser); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"updated": true})
}

// DeactivateAccount flips is_active off. Rows stay; the account just can
// no longer authenticate.
func DeactivateAccount(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	CurrentUser.IsActive = false

	if err := config.DataBase.Model(CurrentUser).Update("is_active", false).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"deactivated": true})
}
