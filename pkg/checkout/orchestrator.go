package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aamart/storefront/pkg/cart"
	"github.com/aamart/storefront/pkg/domain"
	"github.com/aamart/storefront/pkg/observability"
	"github.com/google/uuid"
)

// PaymentGateway creates a checkout session on the remote backend.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, items []cart.LineItem) (string, error)
}

// RedirectInitiator resolves a session id to the provider's hosted payment
// URL. An inline provider error here means the attempt failed before the
// shopper ever left the application.
type RedirectInitiator interface {
	RedirectURL(ctx context.Context, sessionID string) (string, error)
}

// Carts is the slice of the cart store the orchestrator needs: an
// immutable snapshot per attempt, and atomic clearing on success.
type Carts interface {
	Snapshot(owner uuid.UUID) []cart.LineItem
	Empty(owner uuid.UUID)
}

// Orchestrator drives a checkout attempt from cart snapshot to hosted
// redirect, and reconciles the asynchronous outcome afterwards.
//
// The cart is emptied exactly on the success transition and only then;
// cancelled and failed attempts always preserve it.
type Orchestrator struct {
	gateway   PaymentGateway
	redirects RedirectInitiator
	carts     Carts
	pending   *PendingStore
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a checkout orchestrator. metrics may be nil.
func New(
	gateway PaymentGateway,
	redirects RedirectInitiator,
	carts Carts,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Orchestrator {
	return &Orchestrator{
		gateway:   gateway,
		redirects: redirects,
		carts:     carts,
		pending:   NewPendingStore(),
		logger:    logger,
		metrics:   metrics,
	}
}

// Checkout runs one place-order action for owner and returns the hosted
// payment URL to redirect to.
//
// An empty cart fails immediately without any network call. While a
// session-creation call is outstanding, further submissions are rejected
// with domain.ErrCheckoutInFlight. No failure is retried automatically.
func (o *Orchestrator) Checkout(ctx context.Context, owner uuid.UUID) (string, error) {
	log := o.logger.With("context", "Checkout", "owner", owner)

	snapshot := o.carts.Snapshot(owner)
	if len(snapshot) == 0 {
		o.metrics.CheckoutDisposition(string(OutcomeFailed))
		return "", domain.ErrEmptyCart
	}

	attemptID, err := o.pending.Begin(owner)
	if err != nil {
		log.Warn("submission ignored, attempt already in flight")
		return "", err
	}
	log = log.With("attempt", attemptID)

	// Display total only. The backend recomputes authoritative pricing
	// from the item identities in the snapshot.
	log.Info("starting checkout", "items", len(snapshot), "display_total", cart.Total(snapshot))

	sessionID, err := o.gateway.CreateCheckoutSession(ctx, snapshot)
	if err != nil {
		o.pending.Abort(owner, attemptID)
		o.metrics.CheckoutDisposition(string(OutcomeFailed))
		log.Error("checkout session creation failed", "error", err)
		return "", err
	}
	log = log.With("session_id", sessionID)

	redirectURL, err := o.redirects.RedirectURL(ctx, sessionID)
	if err != nil {
		// Provider declined inline, before the hand-off. Cart preserved.
		o.pending.Abort(owner, attemptID)
		o.metrics.CheckoutDisposition(string(OutcomeFailed))
		log.Error("redirect initiation failed", "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrPaymentProvider, err)
	}

	o.pending.MarkRedirected(owner, attemptID, sessionID)
	log.Info("handing off to payment provider")
	return redirectURL, nil
}

// Complete reconciles the provider's success callback. The cart is emptied
// only when sessionID matches the attempt recorded before the hand-off;
// a callback with no matching pending attempt is stale and leaves all
// local state untouched.
func (o *Orchestrator) Complete(owner uuid.UUID, sessionID string) Disposition {
	log := o.logger.With("context", "Complete", "owner", owner, "session_id", sessionID)

	if sessionID == "" || !o.pending.Take(owner, sessionID) {
		o.metrics.StaleCallback()
		log.Warn("success callback matched no pending attempt, ignoring")
		d := Success(sessionID)
		d.Stale = true
		return d
	}

	o.carts.Empty(owner)
	o.metrics.CheckoutDisposition(string(OutcomeSuccess))
	log.Info("checkout completed, cart emptied")
	return Success(sessionID)
}

// Cancel reconciles the provider's cancel callback: the pending attempt is
// discarded and the cart stays intact.
func (o *Orchestrator) Cancel(owner uuid.UUID) Disposition {
	o.pending.Drop(owner)
	o.metrics.CheckoutDisposition(string(OutcomeCancelled))
	o.logger.Info("checkout cancelled by shopper", "owner", owner)
	return Cancelled()
}

// FailureReason maps a checkout error to the single user-visible message
// for the order page, per the propagation policy: structured remote detail
// when the backend supplied one, a generic notice otherwise.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, domain.ErrCheckoutInFlight):
		return "Your order is already being processed."
	case errors.Is(err, domain.ErrRemoteRejected), errors.Is(err, domain.ErrPaymentProvider):
		return "The payment could not be started. Please try again."
	default:
		return "Something went wrong placing your order. Please try again."
	}
}
