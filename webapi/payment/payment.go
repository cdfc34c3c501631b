// Package payment hosts the provider's return targets. These are
// client-side routes, not webhooks: the shopper lands here after the
// hosted payment page redirects back.
package payment

import (
	"github.com/aamart/storefront/pkg/checkout"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/middleware"
	"github.com/aamart/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the success and cancel return targets.
func Routes(app *fiber.App, orchestrator *checkout.Orchestrator, cfg *config.Jwt) {
	protected := middleware.JwtProtected(cfg)
	app.Get("/payment/success", protected, Success(orchestrator))
	app.Get("/payment/cancel", protected, Cancel(orchestrator))
}

// Success reconciles the provider's success redirect. The session id from
// the return URL is checked against the pending attempt recorded before
// the hand-off; only a matching callback empties the cart.
// @Summary Payment success target
// @Tags payment
// @Produce json
// @Param session_id query string false "Provider session id"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /payment/success [get]
// @Security Bearer
func Success(orchestrator *checkout.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}

		d := orchestrator.Complete(owner, c.Query("session_id"))
		data := fiber.Map{"back": "/dashboard"}
		if d.SessionID != "" {
			data["session_id"] = d.SessionID
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Thank you for your purchase!", data)
	}
}

// Cancel reconciles the provider's cancel redirect: the cart is preserved
// and the shopper is pointed back to checkout.
// @Summary Payment cancel target
// @Tags payment
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /payment/cancel [get]
// @Security Bearer
func Cancel(orchestrator *checkout.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}

		orchestrator.Cancel(owner)
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Payment cancelled", fiber.Map{"back": "/order"})
	}
}
