// Package stripepayment initiates the hosted payment hand-off for a
// backend-issued checkout session.
package stripepayment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/domain"
	"github.com/stripe/stripe-go/v82"
)

// Provider resolves checkout-session ids to the hosted payment page URL
// using the Stripe API.
type Provider struct {
	client *stripe.Client
	cfg    *config.Stripe
	logger *slog.Logger
}

// New creates a Stripe-backed redirect initiator.
func New(cfg *config.Stripe, logger *slog.Logger) *Provider {
	return &Provider{
		client: stripe.NewClient(cfg.ApiKey),
		cfg:    cfg,
		logger: logger,
	}
}

// RedirectURL looks up the session created by the backend and returns its
// hosted payment URL. This is the suspend point of the checkout flow:
// control leaves the application at the returned URL and only comes back
// through the success or cancel callback routes.
func (p *Provider) RedirectURL(ctx context.Context, sessionID string) (string, error) {
	log := p.logger.With("session_id", sessionID)

	session, err := p.client.V1CheckoutSessions.Retrieve(ctx, sessionID, nil)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			// Declined inline, before any redirect happened.
			log.Error("stripe rejected the session",
				"code", stripeErr.Code, "error", stripeErr.Msg)
			return "", fmt.Errorf("%w: %s", domain.ErrPaymentProvider, stripeErr.Msg)
		}
		log.Error("stripe session lookup failed", "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	if session.URL == "" {
		log.Error("stripe session has no hosted URL", "status", session.Status)
		return "", fmt.Errorf("%w: session %s is not redirectable", domain.ErrPaymentProvider, sessionID)
	}

	log.Info("hosted payment URL resolved")
	return session.URL, nil
}
