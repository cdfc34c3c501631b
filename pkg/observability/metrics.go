// Package observability is the diagnostics sink for the storefront flows.
// User-facing surfaces show generic notices; the detail lands here as
// structured counters.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics aggregates the storefront counters. A nil *Metrics is a valid
// no-op sink, so components never need a guard around recording calls.
type Metrics struct {
	credentialDecodeFailures prometheus.Counter
	loginOutcomes            *prometheus.CounterVec
	checkoutDispositions     *prometheus.CounterVec
	staleCallbacks           prometheus.Counter
}

// New registers the storefront metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		credentialDecodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "credential_decode_failures_total",
			Help:      "Stored credentials that could not be decoded and were treated as expired.",
		}),
		loginOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "login_outcomes_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		checkoutDispositions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "checkout_dispositions_total",
			Help:      "Checkout attempts by final disposition.",
		}, []string{"disposition"}),
		staleCallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "stale_payment_callbacks_total",
			Help:      "Payment callbacks that matched no pending checkout and were ignored.",
		}),
	}
	reg.MustRegister(
		m.credentialDecodeFailures,
		m.loginOutcomes,
		m.checkoutDispositions,
		m.staleCallbacks,
	)
	return m
}

// CredentialDecodeFailure records a fail-closed credential decode.
func (m *Metrics) CredentialDecodeFailure() {
	if m == nil {
		return
	}
	m.credentialDecodeFailures.Inc()
}

// LoginOutcome records a login attempt result: "success", "rejected" or
// "transport_failure".
func (m *Metrics) LoginOutcome(outcome string) {
	if m == nil {
		return
	}
	m.loginOutcomes.WithLabelValues(outcome).Inc()
}

// CheckoutDisposition records a resolved checkout attempt: "success",
// "cancelled" or "failed".
func (m *Metrics) CheckoutDisposition(disposition string) {
	if m == nil {
		return
	}
	m.checkoutDispositions.WithLabelValues(disposition).Inc()
}

// StaleCallback records a payment callback ignored by the stale-response
// check.
func (m *Metrics) StaleCallback() {
	if m == nil {
		return
	}
	m.staleCallbacks.Inc()
}
