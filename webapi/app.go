// Package webapi assembles the storefront HTTP application.
package webapi

import (
	"log/slog"

	cartpkg "github.com/aamart/storefront/pkg/cart"
	"github.com/aamart/storefront/pkg/checkout"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/middleware"
	"github.com/aamart/storefront/pkg/observability"
	"github.com/aamart/storefront/pkg/token"
	"github.com/aamart/storefront/webapi/auth"
	"github.com/aamart/storefront/webapi/cart"
	"github.com/aamart/storefront/webapi/common"
	"github.com/aamart/storefront/webapi/order"
	"github.com/aamart/storefront/webapi/payment"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the wired dependencies for the HTTP surface.
type Deps struct {
	Config       *config.App
	Logger       *slog.Logger
	Carts        *cartpkg.Store
	Guard        *token.Guard
	AuthGateway  auth.Gateway
	Orchestrator *checkout.Orchestrator
	Metrics      *observability.Metrics
	Registry     *prometheus.Registry
}

// NewApp builds the Fiber application with all storefront routes and
// middleware.
func NewApp(deps *Deps) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", nil, err.Error(), status)
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil,
				"Rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("A&A Mart storefront is up 🛒")
	})

	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	app.Get("/dashboard", middleware.JwtProtected(cfg.Auth.Jwt), Dashboard())

	auth.Routes(app, deps.AuthGateway, deps.Guard, cfg.Auth.Jwt, deps.Metrics)
	cart.Routes(app, deps.Carts, cfg.Auth.Jwt)
	order.Routes(app, deps.Carts, deps.Orchestrator, cfg.Auth.Jwt)
	payment.Routes(app, deps.Orchestrator, cfg.Auth.Jwt)

	return app
}

// Dashboard is the protected landing page the login flow redirects to.
func Dashboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Welcome to A&A Mart",
			fiber.Map{"shopper_id": owner})
	}
}
