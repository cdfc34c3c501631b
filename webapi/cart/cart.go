// Package cart exposes the shopper's cart over HTTP: thin handlers over
// the in-memory cart store, all behind the authoritative JWT check.
package cart

import (
	"strconv"

	cartpkg "github.com/aamart/storefront/pkg/cart"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/middleware"
	"github.com/aamart/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the cart operations.
func Routes(app *fiber.App, store *cartpkg.Store, cfg *config.Jwt) {
	protected := middleware.JwtProtected(cfg)
	app.Get("/cart", protected, GetCart(store))
	app.Post("/cart/items", protected, AddItem(store))
	app.Delete("/cart/items/:index", protected, RemoveItem(store))
	app.Delete("/cart", protected, EmptyCart(store))
}

// GetCart returns the cart lines and the recomputed display total.
// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /cart [get]
// @Security Bearer
func GetCart(store *cartpkg.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		items := store.Items(owner)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cart fetched", CartDTO{
			Items: items,
			Total: cartpkg.Total(items).String(),
		})
	}
}

// AddItem appends a line item to the cart.
// @Summary Add cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddItemInput true "Line item"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /cart/items [post]
// @Security Bearer
func AddItem(store *cartpkg.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[AddItemInput](c)
		if input == nil {
			return err
		}
		store.Add(owner, cartpkg.LineItem{
			Name:     input.Name,
			SKU:      input.SKU,
			Price:    input.Price,
			Quantity: input.Quantity,
			Image:    input.Image,
		})
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Item added", nil)
	}
}

// RemoveItem deletes one cart line by position.
// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /cart/items/{index} [delete]
// @Security Bearer
func RemoveItem(store *cartpkg.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid line index", nil,
				"index must be an integer", fiber.StatusBadRequest)
		}
		store.Remove(owner, index)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Item removed", nil)
	}
}

// EmptyCart discards the whole cart.
// @Summary Empty cart
// @Tags cart
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /cart [delete]
// @Security Bearer
func EmptyCart(store *cartpkg.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := common.ShopperID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		store.Empty(owner)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cart emptied", nil)
	}
}
