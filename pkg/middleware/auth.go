// Package middleware provides route protection for the storefront's
// protected pages. Unlike the advisory client-side session guard, this is
// the authoritative check: the token signature is verified on every
// protected request.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/aamart/storefront/pkg/config"
)

// JwtProtected verifies the session token from the cookie (or an
// Authorization header) and stores the parsed token in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		TokenLookup:  "cookie:" + cfg.CookieName + ",header:Authorization",
		AuthScheme:   "Bearer",
		ContextKey:   "user",
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}
