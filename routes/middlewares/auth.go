package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coinfolio/coinfolio/controllers/auth"
	"github.com/coinfolio/coinfolio/models"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	AuthzAccountLocked  = "authz.account_locked"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
)

func Authenticate(c *fiber.Ctx) error {
	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		return c.Status(422).JSON(fiber.Map{
			"errors": []string{JwtDecodeAndVerify},
		})
	}

	user, err := models.FindUserByUID(claims.UID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	if !user.IsActive {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzAccountLocked},
		})
	}

	c.Locals("CurrentUser", user)

	return c.Next()
}
