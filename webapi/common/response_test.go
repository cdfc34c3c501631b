package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aamart/storefront/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty cart", domain.ErrEmptyCart, fiber.StatusBadRequest},
		{"in flight", domain.ErrCheckoutInFlight, fiber.StatusConflict},
		{"remote rejected", fmt.Errorf("%w: nope", domain.ErrRemoteRejected), fiber.StatusUnprocessableEntity},
		{"transport", domain.ErrTransport, fiber.StatusBadGateway},
		{"payment provider", domain.ErrPaymentProvider, fiber.StatusBadGateway},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Checkout failed", domain.ErrTransport, "generic notice")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Checkout failed", pd.Title)
	assert.Equal(t, "generic notice", pd.Detail)
	assert.Equal(t, "/boom", pd.Instance)
}

func TestProblemDetailsJSON_ExplicitStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/denied", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Unauthorized", nil, "no", fiber.StatusUnauthorized)
	})

	req := httptest.NewRequest(http.MethodGet, "/denied", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBindAndValidate_FieldScopedErrors(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[input](c)
		if in == nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var pd struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "email", pd.Errors["Email"])
}
