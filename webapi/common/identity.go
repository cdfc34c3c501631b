package common

import (
	"errors"

	"github.com/aamart/storefront/pkg/token"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrMissingUserContext = errors.New("missing user context")

// ShopperID extracts the authenticated shopper id from the verified token
// placed in the request context by the JWT middleware.
func ShopperID(c *fiber.Ctx) (uuid.UUID, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, ErrMissingUserContext
	}
	return token.CurrentUserID(tok)
}
