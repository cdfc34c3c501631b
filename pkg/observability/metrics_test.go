package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.CredentialDecodeFailure()
	m.CredentialDecodeFailure()
	m.LoginOutcome("success")
	m.CheckoutDisposition("cancelled")
	m.StaleCallback()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.credentialDecodeFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginOutcomes.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkoutDispositions.WithLabelValues("cancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleCallbacks))
}

func TestMetrics_NilSinkIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CredentialDecodeFailure()
		m.LoginOutcome("rejected")
		m.CheckoutDisposition("failed")
		m.StaleCallback()
	})
}
