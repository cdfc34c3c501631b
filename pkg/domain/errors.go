// Package domain defines the error taxonomy shared by the storefront flows.
//
// The split mirrors how failures surface to the shopper: validation stays on
// the form, transport and remote failures collapse into one generic notice,
// and a cancelled payment is not an error at all.
package domain

import "errors"

var (
	// ErrEmptyCart is returned when a checkout is attempted on an empty cart.
	// No network call is issued in this case.
	ErrEmptyCart = errors.New("empty cart")

	// ErrCheckoutInFlight is returned when a second place-order arrives while
	// a checkout-session request is still outstanding for the same shopper.
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrRemoteRejected indicates the backend understood the request and
	// declined it. The wrapped message carries the structured error payload.
	ErrRemoteRejected = errors.New("remote rejected request")

	// ErrTransport covers unreachable backends, timeouts and garbled
	// responses. Detail is logged, never shown to the shopper.
	ErrTransport = errors.New("transport failure")

	// ErrPaymentProvider indicates the payment provider declined inline,
	// before the hosted redirect could happen.
	ErrPaymentProvider = errors.New("payment provider error")
)
