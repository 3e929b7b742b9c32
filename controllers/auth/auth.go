package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/coinfolio/coinfolio/models"
)

// Auth represents parsed jwt information.
type Auth struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`

	jwt.StandardClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken issues a signed session token for the user.
func GenerateToken(user *models.User, ttl time.Duration) (string, error) {
	claims := Auth{
		UID:      user.UID,
		Email:    user.Email,
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret())
}

// ParseToken verifies a bearer token and returns its claims.
func ParseToken(token string) (*Auth, error) {
	token = strings.Replace(token, "Bearer ", "", -1)

	claims := &Auth{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return secret(), nil
	})

	if err != nil || !parsed.Valid {
		return nil, errors.New("jwt.decode_and_verify")
	}

	return claims, nil
}

// GetCurrentUser returns the user loaded by the authentication
// middleware, or nil outside an authenticated route.
func GetCurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("CurrentUser").(*models.User)
	if !ok {
		return nil
	}

	return user
}
