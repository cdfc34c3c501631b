package auth

import (
	"context"
	"errors"
	"time"

	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/domain"
	"github.com/aamart/storefront/pkg/observability"
	"github.com/aamart/storefront/pkg/token"
	"github.com/aamart/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Gateway is the slice of the auth backend the handlers need.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Routes registers the login surface and the login action.
func Routes(
	app *fiber.App,
	gw Gateway,
	guard *token.Guard,
	cfg *config.Jwt,
	metrics *observability.Metrics,
) {
	app.Get("/login", LoginSurface(guard, cfg))
	app.Post("/auth/login", Login(gw, cfg, metrics))
}

// Login authenticates the shopper against the remote auth backend and
// stores the returned session token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(gw Gateway, cfg *config.Jwt, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // Response already written by BindAndValidate
		}

		credential, err := gw.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrRemoteRejected) {
				metrics.LoginOutcome("rejected")
				return common.ProblemDetailsJSON(c, "Invalid email or password", nil,
					"Email or password is incorrect", fiber.StatusUnauthorized)
			}
			metrics.LoginOutcome("transport_failure")
			return common.ProblemDetailsJSON(c, "Login unavailable", nil,
				"Error during login. Please try again.", fiber.StatusBadGateway)
		}

		token.NewCookieStore(c, cfg).Set(credential)
		metrics.LoginOutcome("success")
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login",
			fiber.Map{"redirect": "/dashboard"})
	}
}

// LoginSurface evaluates the stored credential and returns the routing
// decision for the login page: a valid session redirects away immediately,
// an expired one stays with the session-expired notice, no credential
// stays silently.
// @Summary Login surface state
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Success 303 "Redirect to the protected area"
// @Router /login [get]
func LoginSurface(guard *token.Guard, cfg *config.Jwt) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := token.NewCookieStore(c, cfg)
		credential, _ := store.Get()

		state := guard.Evaluate(credential, time.Now())
		switch token.RouteFor(state) {
		case token.RedirectToDashboard:
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		case token.StayOnLoginExpired:
			// Clear the dead credential so the notice shows once.
			store.Clear()
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Login required",
				LoginSurfaceDTO{
					SessionExpired: true,
					Notice:         "Your session has expired. Please log in again.",
				})
		default:
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Login required",
				LoginSurfaceDTO{})
		}
	}
}
