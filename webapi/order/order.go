// Package order is the place-order surface: it shows the cart with its
// display total and turns one submission into one checkout attempt.
package order

import (
	"errors"

	cartpkg "github.com/aamart/storefront/pkg/cart"
	"github.com/aamart/storefront/pkg/checkout"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/domain"
	"github.com/aamart/storefront/pkg/middleware"
	"github.com/aamart/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the order page and the place-order action.
func Routes(
	app *fiber.App,
	store *cartpkg.Store,
	orchestrator *checkout.Orchestrator,
	cfg *config.Jwt,
) {
	protected := middleware.JwtProtected(cfg)
	app.Get("/order", protected, GetOrder(store))
	app.Post("/order/checkout", protected, PlaceOrder(orchestrator))
}

// GetOrder returns the order page data: the cart lines and the total,
// recomputed for display. The total is never the price of record; the
// backend recomputes authoritative amounts from the item identities.
// @Summary Order page
// @Tags order
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /order [get]
// @Security Bearer
func GetOrder(store *cartpkg.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		items := store.Items(owner)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Order page", fiber.Map{
			"items": items,
			"total": cartpkg.Total(items).String(),
		})
	}
}

// PlaceOrder runs one checkout attempt and redirects the shopper to the
// hosted payment page. Every failure surfaces as a single user-visible
// notice; nothing is retried automatically and the cart is never touched
// on failure.
// @Summary Place order
// @Tags order
// @Produce json
// @Success 303 "Redirect to the hosted payment page"
// @Failure 400 {object} common.ProblemDetails "Empty cart"
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails "Submission already in flight"
// @Failure 502 {object} common.ProblemDetails
// @Router /order/checkout [post]
// @Security Bearer
func PlaceOrder(orchestrator *checkout.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}

		redirectURL, err := orchestrator.Checkout(c.Context(), owner)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				return common.ProblemDetailsJSON(c, "Cannot place order", nil,
					checkout.FailureReason(err), fiber.StatusBadRequest)
			case errors.Is(err, domain.ErrCheckoutInFlight):
				return common.ProblemDetailsJSON(c, "Order in progress", nil,
					checkout.FailureReason(err), fiber.StatusConflict)
			default:
				return common.ProblemDetailsJSON(c, "Checkout failed", err,
					checkout.FailureReason(err))
			}
		}

		return c.Redirect(redirectURL, fiber.StatusSeeOther)
	}
}
