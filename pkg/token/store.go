// Package token wraps the persisted session credential and classifies it.
// The credential is an opaque signed string issued by the auth backend; the
// client only ever reads it.
package token

import (
	"time"

	"github.com/aamart/storefront/pkg/config"
	"github.com/gofiber/fiber/v2"
)

// Store is the persisted credential boundary: get, set, clear. It has no
// logic of its own.
type Store interface {
	Get() (string, bool)
	Set(credential string)
	Clear()
}

// CookieStore keeps the credential in a browser-scoped cookie, bound to one
// request/response exchange.
type CookieStore struct {
	c   *fiber.Ctx
	cfg *config.Jwt
}

// NewCookieStore binds a cookie-backed credential store to the current
// request context.
func NewCookieStore(c *fiber.Ctx, cfg *config.Jwt) *CookieStore {
	return &CookieStore{c: c, cfg: cfg}
}

func (s *CookieStore) Get() (string, bool) {
	v := s.c.Cookies(s.cfg.CookieName)
	return v, v != ""
}

func (s *CookieStore) Set(credential string) {
	s.c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    credential,
		Expires:  time.Now().Add(s.cfg.Expiry),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *CookieStore) Clear() {
	s.c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
